package lucene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kyle-williams-1/lucenic/raw"
)

// convertQuery lowers the parse tree into the untrusted query representation.
func convertQuery(g *grammarQuery) (raw.Query, error) {
	if g.Expression == nil {
		return nil, errors.New("empty query")
	}
	return convertExpression(g.Expression)
}

func convertExpression(g *grammarExpression) (raw.Query, error) {
	if len(g.Or) == 0 {
		return nil, errors.New("empty expression")
	}
	result, err := convertAndExpression(g.Or[0])
	if err != nil {
		return nil, err
	}
	for _, operand := range g.Or[1:] {
		next, err := convertAndExpression(operand)
		if err != nil {
			return nil, err
		}
		result = raw.Or(result, next)
	}
	return result, nil
}

func convertAndExpression(g *grammarAndExpression) (raw.Query, error) {
	if len(g.And) == 0 {
		return nil, errors.New("empty expression")
	}
	result, err := convertNotExpression(g.And[0])
	if err != nil {
		return nil, err
	}
	for _, operand := range g.And[1:] {
		next, err := convertNotExpression(operand)
		if err != nil {
			return nil, err
		}
		result = raw.And(result, next)
	}
	return result, nil
}

func convertNotExpression(g *grammarNotExpression) (raw.Query, error) {
	if g.Not != nil {
		sub, err := convertNotExpression(g.Not)
		if err != nil {
			return nil, err
		}
		return raw.Neg(sub), nil
	}
	return convertTerm(g.Term)
}

func convertTerm(g *grammarTerm) (raw.Query, error) {
	switch {
	case g.FieldValue != nil:
		return convertFieldValue(g.FieldValue)
	case g.Group != nil:
		return convertExpression(g.Group.Expression)
	case g.Bare != nil:
		exprs, err := convertValue(g.Bare)
		if err != nil {
			return nil, err
		}
		return defaultFieldQuery(exprs)
	}
	return nil, errors.New("empty term")
}

// convertFieldValue binds the first value expression to the field; trailing
// bare terms become separate default-field terms, matching how Lucene treats
// unquoted multi-word values.
func convertFieldValue(g *grammarFieldValue) (raw.Query, error) {
	exprs, err := convertValue(g.Value)
	if err != nil {
		return nil, err
	}
	result := raw.Field(g.Field, exprs[0])
	for _, e := range exprs[1:] {
		result = raw.And(result, raw.DefaultField(e))
	}
	return result, nil
}

func defaultFieldQuery(exprs []raw.Expr) (raw.Query, error) {
	result := raw.DefaultField(exprs[0])
	for _, e := range exprs[1:] {
		result = raw.And(result, raw.DefaultField(e))
	}
	return result, nil
}

// convertValue interprets a parsed value into one or more raw expressions.
func convertValue(g *grammarValue) ([]raw.Expr, error) {
	switch {
	case len(g.TextTerms) > 0:
		exprs := make([]raw.Expr, 0, len(g.TextTerms))
		for _, term := range g.TextTerms {
			exprs = append(exprs, interpretTerm(term))
		}
		return exprs, nil
	case g.String != nil:
		return []raw.Expr{phraseOf(*g.String)}, nil
	case g.SingleString != nil:
		return []raw.Expr{phraseOf(*g.SingleString)}, nil
	case g.Regex != nil:
		pattern := strings.TrimSuffix(strings.TrimPrefix(*g.Regex, "/"), "/")
		return []raw.Expr{raw.Regexp(pattern)}, nil
	case g.Bracketed != nil:
		rangeExpr, err := parseRange(*g.Bracketed)
		if err != nil {
			return nil, err
		}
		return []raw.Expr{rangeExpr}, nil
	case g.DateTime != nil:
		datetime, err := parseDateTime(*g.DateTime)
		if err != nil {
			return nil, err
		}
		return []raw.Expr{datetime}, nil
	case g.TimeString != nil:
		return []raw.Expr{raw.Word(*g.TimeString)}, nil
	}
	return nil, errors.New("empty value")
}

// phraseOf splits quoted text into a phrase of words. A quoted single word is
// still a phrase; quoting is how callers ask for exact phrase matching.
func phraseOf(text string) raw.Expr {
	fields := strings.Fields(text)
	words := make([]raw.Expr, len(fields))
	for i, field := range fields {
		words[i] = raw.Word(field)
	}
	return raw.Phrase(words...)
}

// interpretTerm classifies a bare token, peeling boost (^f) and fuzz (~n)
// suffixes before inspecting the remainder.
func interpretTerm(token string) raw.Expr {
	if idx := strings.LastIndex(token, "^"); idx > 0 {
		if factor, err := strconv.ParseFloat(token[idx+1:], 64); err == nil {
			return raw.Boost(interpretTerm(token[:idx]), factor)
		}
	}
	if idx := strings.LastIndex(token, "~"); idx > 0 {
		if distance, err := strconv.Atoi(token[idx+1:]); err == nil {
			return raw.Fuzz(interpretTerm(token[:idx]), distance)
		}
	}
	if token == "true" || token == "false" {
		return raw.Bool(token == "true")
	}
	if strings.ContainsAny(token, "*?") {
		return raw.Wild(token)
	}
	if value, err := strconv.ParseInt(token, 10, 64); err == nil {
		return raw.Int(value)
	}
	if value, err := strconv.ParseFloat(token, 64); err == nil {
		return raw.Float(value)
	}
	if datetime, err := parseDateTime(token); err == nil {
		return datetime
	}
	return raw.Word(token)
}

// dateFormats are tried in order when interpreting datetime tokens.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// dateOnlyFormats produce day-truncated values rather than full timestamps.
var dateOnlyFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseDateTime parses a datetime token into a raw datetime expression. Full
// timestamps keep all seven components; date-only tokens truncate to the day.
func parseDateTime(token string) (raw.Expr, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, token); err == nil {
			return raw.UTC(t), nil
		}
	}
	for _, format := range dateOnlyFormats {
		if t, err := time.Parse(format, token); err == nil {
			return raw.Date(t.Year(), int(t.Month()), t.Day()), nil
		}
	}
	return nil, fmt.Errorf("unable to parse datetime: %s", token)
}

// parseRange parses a bracketed range like [1 TO 10}, with per-end
// inclusivity and * for unbounded ends.
func parseRange(token string) (raw.Expr, error) {
	if len(token) < 2 {
		return nil, fmt.Errorf("invalid range: %s", token)
	}
	openBracket, closeBracket := token[0], token[len(token)-1]
	inner := token[1 : len(token)-1]
	idx := strings.Index(strings.ToUpper(inner), " TO ")
	if idx < 0 {
		return nil, fmt.Errorf("invalid range format: expected [start TO end], got %s", token)
	}
	lo, err := parseBound(strings.TrimSpace(inner[:idx]), openBracket == '[')
	if err != nil {
		return nil, err
	}
	hi, err := parseBound(strings.TrimSpace(inner[idx+len(" TO "):]), closeBracket == ']')
	if err != nil {
		return nil, err
	}
	return raw.To(lo, hi), nil
}

func parseBound(token string, inclusive bool) (raw.Bound, error) {
	if token == "" {
		return raw.Bound{}, errors.New("empty range boundary")
	}
	if token == "*" {
		return raw.Star(), nil
	}
	e := interpretTerm(token)
	if inclusive {
		return raw.Incl(e), nil
	}
	return raw.Excl(e), nil
}
