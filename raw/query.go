package raw

import "github.com/kyle-williams-1/lucenic/query"

// Query is a query tree over untyped expressions.
type Query = query.Query[Expr]

// DefaultField targets the default field with e.
func DefaultField(e Expr) Query { return query.Default[Expr]{Expr: e} }

// Field targets the named field with e.
func Field(name string, e Expr) Query { return query.Field[Expr]{Name: name, Expr: e} }

// And is the conjunction of two queries.
func And(left, right Query) Query { return query.And[Expr]{Left: left, Right: right} }

// Or is the disjunction of two queries.
func Or(left, right Query) Query { return query.Or[Expr]{Left: left, Right: right} }

// Not matches left with right subtracted.
func Not(left, right Query) Query { return query.AndNot[Expr]{Left: left, Right: right} }

// Score sets the constant score of q.
func Score(q Query, factor float64) Query { return query.Score[Expr]{Sub: q, Factor: factor} }

// Neg is the logical must-not of q.
func Neg(q Query) Query { return query.Neg[Expr]{Sub: q} }

// WithParams annotates q with local parameters.
func WithParams(params []query.Param, q Query) Query {
	copied := make([]query.Param, len(params))
	copy(copied, params)
	return query.Params[Expr]{Params: copied, Sub: q}
}
