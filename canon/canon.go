// Package canon rewrites query trees into their canonical form: local
// parameters hoisted above boolean, boost and negation nodes, double
// negations removed, and at most one score surviving in any chain of nested
// scores. Canonicalization is optional; a non-canonical tree still compiles,
// just less predictably.
package canon

import "github.com/kyle-williams-1/lucenic/query"

// Canonicalize runs the three canonicalization passes in order: parameter
// hoisting, double-negation elimination, inner-score elimination. Each pass
// runs to completion before the next starts. The result is shape-preserving
// and idempotent.
func Canonicalize[E any](q query.Query[E]) query.Query[E] {
	q = query.RewriteTopDown(q, hoistParams[E])
	q = query.RewriteBottomUp(q, elimDoubleNeg[E])
	q = query.RewriteBottomUp(q, elimInnerScores[E])
	return q
}

// hoistParams pulls a params wrapper above its parent whenever the parent is
// a boolean, boost or negation node, and collapses directly nested params
// wrappers by concatenating their lists, outer first. Duplicate keys are kept
// as-is; which one wins is up to the downstream consumer.
func hoistParams[E any](q query.Query[E]) (query.Query[E], bool) {
	switch n := q.(type) {
	case query.And[E]:
		if p, ok := n.Left.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.And[E]{Left: p.Sub, Right: n.Right}}, true
		}
		if p, ok := n.Right.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.And[E]{Left: n.Left, Right: p.Sub}}, true
		}
	case query.Or[E]:
		if p, ok := n.Left.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.Or[E]{Left: p.Sub, Right: n.Right}}, true
		}
		if p, ok := n.Right.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.Or[E]{Left: n.Left, Right: p.Sub}}, true
		}
	case query.AndNot[E]:
		if p, ok := n.Left.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.AndNot[E]{Left: p.Sub, Right: n.Right}}, true
		}
		if p, ok := n.Right.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.AndNot[E]{Left: n.Left, Right: p.Sub}}, true
		}
	case query.Score[E]:
		if p, ok := n.Sub.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.Score[E]{Sub: p.Sub, Factor: n.Factor}}, true
		}
	case query.Neg[E]:
		if p, ok := n.Sub.(query.Params[E]); ok {
			return query.Params[E]{Params: p.Params, Sub: query.Neg[E]{Sub: p.Sub}}, true
		}
	case query.Params[E]:
		if p, ok := n.Sub.(query.Params[E]); ok {
			merged := make([]query.Param, 0, len(n.Params)+len(p.Params))
			merged = append(merged, n.Params...)
			merged = append(merged, p.Params...)
			return query.Params[E]{Params: merged, Sub: p.Sub}, true
		}
	}
	return q, false
}

// elimDoubleNeg rewrites neg(neg(q)) to q.
func elimDoubleNeg[E any](q query.Query[E]) (query.Query[E], bool) {
	outer, ok := q.(query.Neg[E])
	if !ok {
		return q, false
	}
	inner, ok := outer.Sub.(query.Neg[E])
	if !ok {
		return q, false
	}
	return inner.Sub, true
}

// elimInnerScores strips every score annotation nested below a score node,
// leaving the node's own factor as the only effective score.
func elimInnerScores[E any](q query.Query[E]) (query.Query[E], bool) {
	score, ok := q.(query.Score[E])
	if !ok {
		return q, false
	}
	sub, stripped := stripScores(score.Sub)
	if !stripped {
		return q, false
	}
	return query.Score[E]{Sub: sub, Factor: score.Factor}, true
}

// stripScores replaces each descendant score(q, _) with q without recursing
// into the replacement; bottom-up ordering guarantees the replacement is
// already clean.
func stripScores[E any](q query.Query[E]) (query.Query[E], bool) {
	switch n := q.(type) {
	case query.Score[E]:
		return n.Sub, true
	case query.And[E]:
		left, cl := stripScores(n.Left)
		right, cr := stripScores(n.Right)
		if cl || cr {
			return query.And[E]{Left: left, Right: right}, true
		}
	case query.Or[E]:
		left, cl := stripScores(n.Left)
		right, cr := stripScores(n.Right)
		if cl || cr {
			return query.Or[E]{Left: left, Right: right}, true
		}
	case query.AndNot[E]:
		left, cl := stripScores(n.Left)
		right, cr := stripScores(n.Right)
		if cl || cr {
			return query.AndNot[E]{Left: left, Right: right}, true
		}
	case query.Neg[E]:
		sub, c := stripScores(n.Sub)
		if c {
			return query.Neg[E]{Sub: sub}, true
		}
	case query.Params[E]:
		sub, c := stripScores(n.Sub)
		if c {
			return query.Params[E]{Params: n.Params, Sub: sub}, true
		}
	}
	return q, false
}
