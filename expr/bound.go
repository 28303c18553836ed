package expr

// BoundKind distinguishes inclusive, exclusive and unbounded range endpoints.
type BoundKind int

const (
	// BoundInclusive renders with [ or ].
	BoundInclusive BoundKind = iota
	// BoundExclusive renders with { or }.
	BoundExclusive
	// BoundUnbounded renders as *.
	BoundUnbounded
)

// Bound is a shape-erased range boundary. It is the form the type checker
// works with; the shape-matched path goes through Boundary and To.
type Bound struct {
	kind BoundKind
	expr Expr
}

// InclOf builds an inclusive boundary around e.
func InclOf(e Expr) Bound { return Bound{kind: BoundInclusive, expr: e} }

// ExclOf builds an exclusive boundary around e.
func ExclOf(e Expr) Bound { return Bound{kind: BoundExclusive, expr: e} }

// Unbounded builds a star boundary.
func Unbounded() Bound { return Bound{kind: BoundUnbounded} }

// Kind returns the boundary kind.
func (b Bound) Kind() BoundKind { return b.kind }

// Expr returns the boundary expression, or nil for an unbounded boundary.
func (b Bound) Expr() Expr { return b.expr }

// BoundShape returns the shape of the boundary expression; unbounded
// boundaries have ShapeAny.
func (b Bound) BoundShape() Shape {
	if b.kind == BoundUnbounded || b.expr == nil {
		return ShapeAny
	}
	return b.expr.Shape()
}

// Boundary is a range endpoint whose expression type is fixed at compile
// time, so both endpoints of To are forced to share a shape.
type Boundary[E Expr] struct {
	bound Bound
}

// Incl builds an inclusive boundary around e.
func Incl[E Expr](e E) Boundary[E] { return Boundary[E]{bound: InclOf(e)} }

// Excl builds an exclusive boundary around e.
func Excl[E Expr](e E) Boundary[E] { return Boundary[E]{bound: ExclOf(e)} }

// Star builds an unbounded boundary that pairs with any boundary of type E.
func Star[E Expr]() Boundary[E] { return Boundary[E]{bound: Unbounded()} }

// To builds a range from two shape-matched boundaries.
func To[E Expr](lo, hi Boundary[E]) RangeExpr {
	return RangeExpr{lo: lo.bound, hi: hi.bound}
}

// RangeOf builds a range from shape-erased boundaries. It reports false when
// the boundary shapes are incompatible. This is the runtime-checked
// counterpart of To, used by the type checker.
func RangeOf(lo, hi Bound) (RangeExpr, bool) {
	if !Compatible(lo.BoundShape(), hi.BoundShape()) {
		return RangeExpr{}, false
	}
	return RangeExpr{lo: lo, hi: hi}, true
}
