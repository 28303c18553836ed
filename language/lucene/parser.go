// Package lucene provides Lucene-style syntax parsing functionality. The
// parser produces untrusted raw trees; shape checking happens afterwards in
// the check package.
package lucene

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/language"
	"github.com/kyle-williams-1/lucenic/raw"
	"github.com/kyle-williams-1/lucenic/registry"
)

func init() {
	registry.RegisterLanguage(config.LanguageLucene, func() language.Parser {
		return New()
	})
}

// Grammar structures for Lucene-style queries

// grammarQuery is the root of the parse tree
type grammarQuery struct {
	Expression *grammarExpression `@@`
}

// grammarExpression handles OR operations (lowest precedence)
type grammarExpression struct {
	Or []*grammarAndExpression `@@ ( "OR" @@ )*`
}

// grammarAndExpression handles AND operations (higher precedence than OR)
type grammarAndExpression struct {
	And []*grammarNotExpression `@@ ( "AND" @@ )*`
}

// grammarNotExpression handles NOT operations (highest precedence)
type grammarNotExpression struct {
	Not  *grammarNotExpression `"NOT" @@`
	Term *grammarTerm          `| @@`
}

// grammarTerm represents individual query terms
type grammarTerm struct {
	FieldValue *grammarFieldValue `@@`
	Group      *grammarGroup      `| @@`
	Bare       *grammarValue      `| @@`
}

// grammarFieldValue represents field:value pairs
type grammarFieldValue struct {
	Field string        `@TextTerm ":"`
	Value *grammarValue `@@`
}

// grammarValue represents a value that can be text terms, a quoted string, a
// regex, a bracketed range or a datetime
type grammarValue struct {
	TextTerms    []string `@TextTerm+`
	String       *string  `| @String`
	SingleString *string  `| @SingleString`
	Regex        *string  `| @Regex`
	Bracketed    *string  `| @Bracketed`
	DateTime     *string  `| @DateTime`
	TimeString   *string  `| @TimeString`
}

// grammarGroup represents parenthesized expressions
type grammarGroup struct {
	Expression *grammarExpression `"(" @@ ")"`
}

// Lexer definition for Lucene-style queries
var luceneLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Whitespace
	{Name: "Whitespace", Pattern: `\s+`},
	// Logical operators
	{Name: "AND", Pattern: `AND`},
	{Name: "OR", Pattern: `OR`},
	{Name: "NOT", Pattern: `NOT`},
	// Parentheses
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	// Quoted strings - must come before TextTerm
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	// Single quoted strings - must come before TextTerm
	{Name: "SingleString", Pattern: `'([^'\\]|\\.)*'`},
	// Regex patterns - must come before Bracketed
	{Name: "Regex", Pattern: `/([^/\\]|\\.)*/`},
	// Ranges with inclusive or exclusive bounds
	{Name: "Bracketed", Pattern: `[\[{][^\]}]+[\]}]`},
	// Datetime strings with colons (ISO format, etc.)
	{Name: "DateTime", Pattern: `\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?`},
	// Time strings with colons
	{Name: "TimeString", Pattern: `\d{2}:\d{2}:\d{2}(\.\d+)?`},
	// Colon separator - must come after datetime patterns
	{Name: "Colon", Pattern: `:`},
	// Text terms (field names or values) - includes wildcard, fuzz and boost suffixes
	{Name: "TextTerm", Pattern: `[^:\s\[\]{}()"']+`},
})

// Parser instance using participle
var participleParser = participle.MustBuild[grammarQuery](
	participle.Lexer(luceneLexer),
	participle.Unquote("String", "SingleString"),
	participle.UseLookahead(2),
	participle.Elide("Whitespace"),
)

// Parser represents a Lucene-style query parser.
type Parser struct {
	preprocessor *QueryPreprocessor
}

// New creates a new Lucene parser instance.
func New() *Parser {
	return &Parser{preprocessor: NewQueryPreprocessor()}
}

// Parse parses a Lucene-style query string into an untrusted query tree.
func (p *Parser) Parse(query string) (raw.Query, error) {
	query = p.preprocessor.PreprocessQuery(query)
	if query == "" {
		return nil, errors.New("empty query")
	}
	if err := p.preprocessor.ValidateParentheses(query); err != nil {
		return nil, err
	}
	parsed, err := participleParser.ParseString("", query)
	if err != nil {
		return nil, err
	}
	return convertQuery(parsed)
}
