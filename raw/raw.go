// Package raw provides the untrusted expression and query builder. It mirrors
// the expr package operator for operator with every shape erased, so trees can
// be assembled from sources the caller does not statically trust, such as the
// Lucene text parser. A raw tree must pass through the check package before it
// can be compiled.
package raw

import "time"

// Expr is an untyped query expression. Unlike expr.Expr, constructors accept
// any operand, so a raw tree may violate the shape compatibility table.
type Expr interface {
	rawExpr()
}

// IntExpr is an integer literal.
type IntExpr struct {
	Value int64
}

// FloatExpr is a floating point literal.
type FloatExpr struct {
	Value float64
}

// BoolExpr is a true/false literal.
type BoolExpr struct {
	Value bool
}

// WordExpr is a bare token.
type WordExpr struct {
	Value string
}

// WildExpr is a token containing ? or * wildcards.
type WildExpr struct {
	Value string
}

// RegexpExpr is a regular expression pattern without delimiters.
type RegexpExpr struct {
	Pattern string
}

// PhraseExpr is an ordered sequence of expressions. Only word elements pass
// the type checker.
type PhraseExpr struct {
	Words []Expr
}

// DateTimeExpr is a timestamp truncated to some calendar component, in year,
// month, day, hour, minute, second, millisecond order.
type DateTimeExpr struct {
	Components []int
}

// FuzzExpr applies an edit distance to its operand.
type FuzzExpr struct {
	Operand  Expr
	Distance int
}

// BoostExpr applies a boost factor to its operand.
type BoostExpr struct {
	Operand Expr
	Factor  float64
}

// RangeExpr spans a lower and an upper boundary.
type RangeExpr struct {
	Lo Bound
	Hi Bound
}

// BoundKind distinguishes inclusive, exclusive and unbounded endpoints.
type BoundKind int

const (
	// BoundInclusive renders with [ or ].
	BoundInclusive BoundKind = iota
	// BoundExclusive renders with { or }.
	BoundExclusive
	// BoundUnbounded renders as *.
	BoundUnbounded
)

// Bound is an untyped range boundary. Expr is nil for unbounded boundaries.
type Bound struct {
	Kind BoundKind
	Expr Expr
}

func (IntExpr) rawExpr()      {}
func (FloatExpr) rawExpr()    {}
func (BoolExpr) rawExpr()     {}
func (WordExpr) rawExpr()     {}
func (WildExpr) rawExpr()     {}
func (RegexpExpr) rawExpr()   {}
func (PhraseExpr) rawExpr()   {}
func (DateTimeExpr) rawExpr() {}
func (FuzzExpr) rawExpr()     {}
func (BoostExpr) rawExpr()    {}
func (RangeExpr) rawExpr()    {}

// Int builds an integer literal.
func Int(v int64) Expr { return IntExpr{Value: v} }

// Float builds a float literal.
func Float(v float64) Expr { return FloatExpr{Value: v} }

// Bool builds a boolean literal.
func Bool(v bool) Expr { return BoolExpr{Value: v} }

// Word builds a bare token expression.
func Word(v string) Expr { return WordExpr{Value: v} }

// Wild builds a wildcard token expression.
func Wild(v string) Expr { return WildExpr{Value: v} }

// Regexp builds a regular expression pattern.
func Regexp(pattern string) Expr { return RegexpExpr{Pattern: pattern} }

// Phrase builds a phrase from the given elements.
func Phrase(words ...Expr) Expr {
	copied := make([]Expr, len(words))
	copy(copied, words)
	return PhraseExpr{Words: copied}
}

// UTC builds a full seven-component timestamp from t, converted to UTC.
func UTC(t time.Time) Expr {
	t = t.UTC()
	return DateTimeExpr{Components: []int{
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond() / int(time.Millisecond),
	}}
}

// Date builds a truncated timestamp from leading calendar components.
func Date(year int, more ...int) Expr {
	components := append([]int{year}, more...)
	if len(components) > 7 {
		components = components[:7]
	}
	return DateTimeExpr{Components: components}
}

// Fuzz wraps an expression with a fuzzy edit distance.
func Fuzz(operand Expr, distance int) Expr {
	return FuzzExpr{Operand: operand, Distance: distance}
}

// Boost wraps an expression with a boost factor.
func Boost(operand Expr, factor float64) Expr {
	return BoostExpr{Operand: operand, Factor: factor}
}

// Incl builds an inclusive boundary around e.
func Incl(e Expr) Bound { return Bound{Kind: BoundInclusive, Expr: e} }

// Excl builds an exclusive boundary around e.
func Excl(e Expr) Bound { return Bound{Kind: BoundExclusive, Expr: e} }

// Star builds an unbounded boundary.
func Star() Bound { return Bound{Kind: BoundUnbounded} }

// To builds a range between two boundaries.
func To(lo, hi Bound) Expr { return RangeExpr{Lo: lo, Hi: hi} }
