// Package check promotes untrusted raw trees into validated expr trees. The
// checker re-applies the same shape compatibility table the expr constructors
// enforce at compile time. It is all or nothing: a single incompatible shape
// anywhere in the tree fails the whole check with no partial result and no
// location detail.
package check

import (
	"github.com/kyle-williams-1/lucenic/expr"
	"github.com/kyle-williams-1/lucenic/query"
	"github.com/kyle-williams-1/lucenic/raw"
)

// Expr checks an untrusted expression bottom up. It reports false when any
// subexpression violates the shape compatibility table.
func Expr(e raw.Expr) (expr.Expr, bool) {
	switch n := e.(type) {
	case raw.IntExpr:
		return expr.Int(n.Value), true
	case raw.FloatExpr:
		return expr.Float(n.Value), true
	case raw.BoolExpr:
		return expr.Bool(n.Value), true
	case raw.WordExpr:
		return expr.Word(n.Value), true
	case raw.WildExpr:
		return expr.Wild(n.Value), true
	case raw.RegexpExpr:
		return expr.Regexp(n.Pattern), true
	case raw.PhraseExpr:
		words := make([]expr.WordExpr, 0, len(n.Words))
		for _, element := range n.Words {
			checked, ok := Expr(element)
			if !ok {
				return nil, false
			}
			word, ok := checked.(expr.WordExpr)
			if !ok {
				return nil, false
			}
			words = append(words, word)
		}
		return expr.Phrase(words...), true
	case raw.DateTimeExpr:
		if len(n.Components) == 0 {
			return nil, false
		}
		return expr.Date(n.Components[0], n.Components[1:]...), true
	case raw.FuzzExpr:
		operand, ok := Expr(n.Operand)
		if !ok {
			return nil, false
		}
		fuzzable, ok := operand.(expr.Fuzzable)
		if !ok {
			return nil, false
		}
		return expr.Fuzz(fuzzable, n.Distance), true
	case raw.BoostExpr:
		operand, ok := Expr(n.Operand)
		if !ok {
			return nil, false
		}
		boostable, ok := operand.(expr.Boostable)
		if !ok {
			return nil, false
		}
		return expr.Boost(boostable, n.Factor), true
	case raw.RangeExpr:
		lo, ok := bound(n.Lo)
		if !ok {
			return nil, false
		}
		hi, ok := bound(n.Hi)
		if !ok {
			return nil, false
		}
		return expr.RangeOf(lo, hi)
	}
	return nil, false
}

func bound(b raw.Bound) (expr.Bound, bool) {
	if b.Kind == raw.BoundUnbounded {
		return expr.Unbounded(), true
	}
	inner, ok := Expr(b.Expr)
	if !ok {
		return expr.Bound{}, false
	}
	if b.Kind == raw.BoundExclusive {
		return expr.ExclOf(inner), true
	}
	return expr.InclOf(inner), true
}

// Query checks every leaf of an untrusted query tree. Binary nodes succeed
// only when both subtrees do.
func Query(q raw.Query) (query.Query[expr.Expr], bool) {
	return query.MapExprs(q, Expr)
}

// Erase converts a validated expression back to its untrusted representation.
// Checking an erased tree always succeeds and yields a structurally identical
// tree, which is the round trip the checker's idempotence tests rely on.
func Erase(e expr.Expr) raw.Expr {
	switch n := e.(type) {
	case expr.IntExpr:
		return raw.Int(n.Value())
	case expr.FloatExpr:
		return raw.Float(n.Value())
	case expr.BoolExpr:
		return raw.Bool(n.Value())
	case expr.WordExpr:
		return raw.Word(n.Value())
	case expr.WildExpr:
		return raw.Wild(n.Value())
	case expr.RegexpExpr:
		return raw.Regexp(n.Pattern())
	case expr.PhraseExpr:
		words := n.Words()
		elements := make([]raw.Expr, len(words))
		for i, word := range words {
			elements[i] = raw.Word(word.Value())
		}
		return raw.PhraseExpr{Words: elements}
	case expr.DateTimeExpr:
		components := n.Components()
		return raw.Date(components[0], components[1:]...)
	case expr.FuzzExpr:
		return raw.Fuzz(Erase(n.Operand()), n.Distance())
	case expr.BoostExpr:
		return raw.Boost(Erase(n.Operand()), n.Factor())
	case expr.RangeExpr:
		return raw.To(eraseBound(n.Lo()), eraseBound(n.Hi()))
	}
	return nil
}

func eraseBound(b expr.Bound) raw.Bound {
	switch b.Kind() {
	case expr.BoundUnbounded:
		return raw.Star()
	case expr.BoundExclusive:
		return raw.Excl(Erase(b.Expr()))
	default:
		return raw.Incl(Erase(b.Expr()))
	}
}

// EraseQuery converts a validated query tree back to its untrusted
// representation.
func EraseQuery(q query.Query[expr.Expr]) raw.Query {
	erased, _ := query.MapExprs(q, func(e expr.Expr) (raw.Expr, bool) {
		return Erase(e), true
	})
	return erased
}
