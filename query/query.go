// Package query provides the query-level tree shared by the validated and
// untrusted builders, plus the generic rewrite engine the canonicalizer is
// built on. The tree is parameterized over its leaf expression type, so the
// same node set works over expr.Expr and raw.Expr leaves.
package query

// Query is a query tree node over leaf expressions of type E. Nodes are
// immutable values; rewriting always produces new trees.
type Query[E any] interface {
	queryNode(E)
}

// Default targets the default field with an expression.
type Default[E any] struct {
	Expr E
}

// Field targets a named field with an expression.
type Field[E any] struct {
	Name string
	Expr E
}

// And is the conjunction of two queries.
type And[E any] struct {
	Left  Query[E]
	Right Query[E]
}

// Or is the disjunction of two queries.
type Or[E any] struct {
	Left  Query[E]
	Right Query[E]
}

// AndNot matches Left with Right subtracted, rendered as `(left -right)`.
type AndNot[E any] struct {
	Left  Query[E]
	Right Query[E]
}

// Score sets the constant score of a query, rendered as `query^=factor`.
type Score[E any] struct {
	Sub    Query[E]
	Factor float64
}

// Neg is the logical must-not of a query, rendered with a leading -.
type Neg[E any] struct {
	Sub Query[E]
}

// Params annotates a query with an ordered list of local parameters,
// rendered as a {!...} block.
type Params[E any] struct {
	Params []Param
	Sub    Query[E]
}

func (Default[E]) queryNode(E) {}
func (Field[E]) queryNode(E)   {}
func (And[E]) queryNode(E)     {}
func (Or[E]) queryNode(E)      {}
func (AndNot[E]) queryNode(E)  {}
func (Score[E]) queryNode(E)   {}
func (Neg[E]) queryNode(E)     {}
func (Params[E]) queryNode(E)  {}

// MapExprs rebuilds q with every leaf expression passed through f, reporting
// false as soon as f does. This is the engine behind the query-level type
// checker and the raw round trip.
func MapExprs[A, B any](q Query[A], f func(A) (B, bool)) (Query[B], bool) {
	switch n := q.(type) {
	case Default[A]:
		e, ok := f(n.Expr)
		if !ok {
			return nil, false
		}
		return Default[B]{Expr: e}, true
	case Field[A]:
		e, ok := f(n.Expr)
		if !ok {
			return nil, false
		}
		return Field[B]{Name: n.Name, Expr: e}, true
	case And[A]:
		left, ok := MapExprs(n.Left, f)
		if !ok {
			return nil, false
		}
		right, ok := MapExprs(n.Right, f)
		if !ok {
			return nil, false
		}
		return And[B]{Left: left, Right: right}, true
	case Or[A]:
		left, ok := MapExprs(n.Left, f)
		if !ok {
			return nil, false
		}
		right, ok := MapExprs(n.Right, f)
		if !ok {
			return nil, false
		}
		return Or[B]{Left: left, Right: right}, true
	case AndNot[A]:
		left, ok := MapExprs(n.Left, f)
		if !ok {
			return nil, false
		}
		right, ok := MapExprs(n.Right, f)
		if !ok {
			return nil, false
		}
		return AndNot[B]{Left: left, Right: right}, true
	case Score[A]:
		sub, ok := MapExprs(n.Sub, f)
		if !ok {
			return nil, false
		}
		return Score[B]{Sub: sub, Factor: n.Factor}, true
	case Neg[A]:
		sub, ok := MapExprs(n.Sub, f)
		if !ok {
			return nil, false
		}
		return Neg[B]{Sub: sub}, true
	case Params[A]:
		sub, ok := MapExprs(n.Sub, f)
		if !ok {
			return nil, false
		}
		return Params[B]{Params: clone(n.Params), Sub: sub}, true
	}
	return nil, false
}

func clone(params []Param) []Param {
	copied := make([]Param, len(params))
	copy(copied, params)
	return copied
}
