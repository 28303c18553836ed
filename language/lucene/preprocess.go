package lucene

import (
	"fmt"
	"regexp"
	"strings"
)

// QueryPreprocessor handles query preprocessing to fix parsing issues
type QueryPreprocessor struct {
	whitespacePattern *regexp.Regexp
}

// NewQueryPreprocessor creates a new query preprocessor
func NewQueryPreprocessor() *QueryPreprocessor {
	return &QueryPreprocessor{
		whitespacePattern: regexp.MustCompile(`[\t\r\n]+`),
	}
}

// PreprocessQuery applies preprocessing fixes to a query string
func (qp *QueryPreprocessor) PreprocessQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// Normalize tabs and newlines to plain spaces so the lexer sees one
	// whitespace form
	query = qp.whitespacePattern.ReplaceAllString(query, " ")

	return query
}

// ValidateParentheses checks that parentheses outside quoted strings are
// balanced before the query reaches the grammar, which produces a clearer
// error than a mid-parse failure.
func (qp *QueryPreprocessor) ValidateParentheses(query string) error {
	depth := 0
	inQuotes := false
	var quote byte
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case inQuotes:
			if c == quote && (i == 0 || query[i-1] != '\\') {
				inQuotes = false
			}
		case c == '"' || c == '\'':
			inQuotes = true
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("unmatched closing parenthesis at position %d", i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unmatched opening parenthesis: %d unclosed", depth)
	}
	return nil
}
