// Package expr provides the shape-checked expression builder for Lucene/Solr
// queries. Constructors only accept shape-compatible operands, so every
// successfully built expression renders to valid query text without further
// validation.
package expr

import "time"

// Expr is a validated query expression. Implementations are immutable values
// built once and shared freely; nothing in this package mutates an expression
// after construction.
type Expr interface {
	// Shape returns the shape tag of the expression.
	Shape() Shape
	validExpr()
}

// Fuzzable is implemented by the expressions the fuzzy operator may wrap:
// bare words and phrases.
type Fuzzable interface {
	Expr
	fuzzable()
}

// Boostable is implemented by every expression except ranges.
type Boostable interface {
	Expr
	boostable()
}

// IntExpr is an integer literal.
type IntExpr struct {
	value int64
}

// Int builds an integer literal.
func Int(v int64) IntExpr { return IntExpr{value: v} }

// Value returns the literal value.
func (e IntExpr) Value() int64 { return e.value }

// Shape returns ShapeNumeric.
func (IntExpr) Shape() Shape { return ShapeNumeric }

func (IntExpr) validExpr() {}
func (IntExpr) boostable() {}

// FloatExpr is a floating point literal.
type FloatExpr struct {
	value float64
}

// Float builds a float literal.
func Float(v float64) FloatExpr { return FloatExpr{value: v} }

// Value returns the literal value.
func (e FloatExpr) Value() float64 { return e.value }

// Shape returns ShapeNumeric.
func (FloatExpr) Shape() Shape { return ShapeNumeric }

func (FloatExpr) validExpr() {}
func (FloatExpr) boostable() {}

// BoolExpr is a true/false literal.
type BoolExpr struct {
	value bool
}

// Bool builds a boolean literal.
func Bool(v bool) BoolExpr { return BoolExpr{value: v} }

// Value returns the literal value.
func (e BoolExpr) Value() bool { return e.value }

// Shape returns ShapeBoolean.
func (BoolExpr) Shape() Shape { return ShapeBoolean }

func (BoolExpr) validExpr() {}
func (BoolExpr) boostable() {}

// WordExpr is a bare token. Callers are expected to pass tokens without
// spaces, wildcards or tildes; the builder does not inspect the text.
type WordExpr struct {
	value string
}

// Word builds a bare token expression.
func Word(v string) WordExpr { return WordExpr{value: v} }

// Value returns the token text.
func (e WordExpr) Value() string { return e.value }

// Shape returns ShapeWord.
func (WordExpr) Shape() Shape { return ShapeWord }

func (WordExpr) validExpr() {}
func (WordExpr) boostable() {}
func (WordExpr) fuzzable()  {}

// WildExpr is a token containing ? or * wildcards.
type WildExpr struct {
	value string
}

// Wild builds a wildcard token expression.
func Wild(v string) WildExpr { return WildExpr{value: v} }

// Value returns the token text, wildcards included.
func (e WildExpr) Value() string { return e.value }

// Shape returns ShapeWildcard.
func (WildExpr) Shape() Shape { return ShapeWildcard }

func (WildExpr) validExpr() {}
func (WildExpr) boostable() {}

// RegexpExpr is a regular expression pattern. The delimiting slashes are
// implicit and added at render time.
type RegexpExpr struct {
	pattern string
}

// Regexp builds a regular expression pattern.
func Regexp(pattern string) RegexpExpr { return RegexpExpr{pattern: pattern} }

// Pattern returns the pattern without delimiters.
func (e RegexpExpr) Pattern() string { return e.pattern }

// Shape returns ShapeRegex.
func (RegexpExpr) Shape() Shape { return ShapeRegex }

func (RegexpExpr) validExpr() {}
func (RegexpExpr) boostable() {}

// PhraseExpr is an ordered sequence of words. Phrases are non-empty by
// convention; the builder does not reject an empty phrase.
type PhraseExpr struct {
	words []WordExpr
}

// Phrase builds a phrase from the given words.
func Phrase(words ...WordExpr) PhraseExpr {
	copied := make([]WordExpr, len(words))
	copy(copied, words)
	return PhraseExpr{words: copied}
}

// Words returns the phrase elements in order.
func (e PhraseExpr) Words() []WordExpr {
	copied := make([]WordExpr, len(e.words))
	copy(copied, e.words)
	return copied
}

// Shape returns ShapePhrase.
func (PhraseExpr) Shape() Shape { return ShapePhrase }

func (PhraseExpr) validExpr() {}
func (PhraseExpr) boostable() {}
func (PhraseExpr) fuzzable()  {}

// maxDateTimeComponents is year, month, day, hour, minute, second, millisecond.
const maxDateTimeComponents = 7

// DateTimeExpr is a timestamp truncated to some calendar component. A full
// seven-component value renders with a trailing Z; truncated values render
// only the supplied components.
type DateTimeExpr struct {
	parts [maxDateTimeComponents]int
	n     int
}

// UTC builds a full seven-component timestamp from t, converted to UTC.
func UTC(t time.Time) DateTimeExpr {
	t = t.UTC()
	return DateTimeExpr{
		parts: [maxDateTimeComponents]int{
			t.Year(), int(t.Month()), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond() / int(time.Millisecond),
		},
		n: maxDateTimeComponents,
	}
}

// Date builds a truncated timestamp from leading calendar components, in
// year, month, day, hour, minute, second, millisecond order. Components past
// the millisecond are ignored.
func Date(year int, more ...int) DateTimeExpr {
	e := DateTimeExpr{n: 1}
	e.parts[0] = year
	for _, part := range more {
		if e.n == maxDateTimeComponents {
			break
		}
		e.parts[e.n] = part
		e.n++
	}
	return e
}

// Components returns the supplied calendar components in order.
func (e DateTimeExpr) Components() []int {
	copied := make([]int, e.n)
	copy(copied, e.parts[:e.n])
	return copied
}

// Shape returns ShapeDateTime.
func (DateTimeExpr) Shape() Shape { return ShapeDateTime }

func (DateTimeExpr) validExpr() {}
func (DateTimeExpr) boostable() {}

// FuzzExpr applies an edit-distance to a word or phrase.
type FuzzExpr struct {
	operand  Expr
	distance int
}

// Fuzz wraps a word or phrase with a fuzzy edit-distance.
func Fuzz(operand Fuzzable, distance int) FuzzExpr {
	return FuzzExpr{operand: operand, distance: distance}
}

// Operand returns the wrapped word or phrase.
func (e FuzzExpr) Operand() Expr { return e.operand }

// Distance returns the edit distance.
func (e FuzzExpr) Distance() int { return e.distance }

// Shape returns ShapeFuzzy.
func (FuzzExpr) Shape() Shape { return ShapeFuzzy }

func (FuzzExpr) validExpr() {}
func (FuzzExpr) boostable() {}

// BoostExpr applies a boost factor to any expression except a range.
type BoostExpr struct {
	operand Expr
	factor  float64
}

// Boost wraps an expression with a boost factor.
func Boost(operand Boostable, factor float64) BoostExpr {
	return BoostExpr{operand: operand, factor: factor}
}

// Operand returns the boosted expression.
func (e BoostExpr) Operand() Expr { return e.operand }

// Factor returns the boost factor.
func (e BoostExpr) Factor() float64 { return e.factor }

// Shape returns ShapeBoosted.
func (BoostExpr) Shape() Shape { return ShapeBoosted }

func (BoostExpr) validExpr() {}
func (BoostExpr) boostable() {}

// RangeExpr spans a lower and an upper boundary. Ranges cannot be boosted.
type RangeExpr struct {
	lo Bound
	hi Bound
}

// Lo returns the lower boundary.
func (e RangeExpr) Lo() Bound { return e.lo }

// Hi returns the upper boundary.
func (e RangeExpr) Hi() Bound { return e.hi }

// Shape returns ShapeRange.
func (RangeExpr) Shape() Shape { return ShapeRange }

func (RangeExpr) validExpr() {}
