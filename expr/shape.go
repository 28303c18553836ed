package expr

// Shape classifies an expression and restricts which operators may wrap it.
// The set of shapes is closed.
type Shape int

const (
	// ShapeNumeric covers integer and float literals.
	ShapeNumeric Shape = iota
	// ShapeBoolean covers true/false literals.
	ShapeBoolean
	// ShapeWord covers bare tokens without spaces, wildcards or tildes.
	ShapeWord
	// ShapeWildcard covers tokens containing ? or *.
	ShapeWildcard
	// ShapeRegex covers regular expression patterns.
	ShapeRegex
	// ShapePhrase covers ordered sequences of words.
	ShapePhrase
	// ShapeDateTime covers full or truncated timestamps.
	ShapeDateTime
	// ShapeFuzzy covers fuzzy-wrapped words and phrases.
	ShapeFuzzy
	// ShapeRange covers bounded and half-bounded ranges.
	ShapeRange
	// ShapeBoosted covers boost-wrapped expressions.
	ShapeBoosted
	// ShapeAny is the shape of an unbounded range boundary. It is compatible
	// with every other shape.
	ShapeAny
)

var shapeNames = map[Shape]string{
	ShapeNumeric:  "numeric",
	ShapeBoolean:  "boolean",
	ShapeWord:     "word",
	ShapeWildcard: "wildcard",
	ShapeRegex:    "regex",
	ShapePhrase:   "phrase",
	ShapeDateTime: "datetime",
	ShapeFuzzy:    "fuzzy",
	ShapeRange:    "range",
	ShapeBoosted:  "boosted",
	ShapeAny:      "any",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Compatible reports whether two boundary shapes may appear in the same range.
func Compatible(lo, hi Shape) bool {
	return lo == hi || lo == ShapeAny || hi == ShapeAny
}
