// Package bson compiles validated query trees into MongoDB BSON filters. It
// is the secondary back end: scoring annotations and local parameters have no
// BSON counterpart and are passed through transparently, while shapes with no
// MongoDB analog (fuzzy) are rejected.
package bson

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/expr"
	"github.com/kyle-williams-1/lucenic/formatter"
	"github.com/kyle-williams-1/lucenic/query"
)

// Formatter represents a BSON formatter for query trees.
type Formatter struct {
	textSearch    bool
	defaultFields []string
}

// New creates a new BSON formatter instance.
func New() *Formatter {
	return &Formatter{}
}

// NewWithConfig creates a new BSON formatter honoring the config's text
// search mode and default fields.
func NewWithConfig(cfg *config.Config) *Formatter {
	return &Formatter{
		textSearch:    cfg.TextSearch,
		defaultFields: cfg.DefaultFields,
	}
}

// Ensure Formatter implements the generic interface
var _ formatter.BSONFormatter = (*Formatter)(nil)

// Format converts a validated query tree into a BSON filter document.
func (f *Formatter) Format(q query.Query[expr.Expr]) (bson.M, error) {
	switch n := q.(type) {
	case query.Default[expr.Expr]:
		return f.defaultFieldFilter(n.Expr)
	case query.Field[expr.Expr]:
		value, err := fieldValue(n.Expr)
		if err != nil {
			return nil, err
		}
		return bson.M{n.Name: value}, nil
	case query.And[expr.Expr]:
		left, err := f.Format(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := f.Format(n.Right)
		if err != nil {
			return nil, err
		}
		return mergeAnd(left, right), nil
	case query.Or[expr.Expr]:
		left, err := f.Format(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := f.Format(n.Right)
		if err != nil {
			return nil, err
		}
		return bson.M{"$or": []bson.M{left, right}}, nil
	case query.AndNot[expr.Expr]:
		left, err := f.Format(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := f.Format(n.Right)
		if err != nil {
			return nil, err
		}
		return bson.M{"$and": []bson.M{left, {"$nor": []bson.M{right}}}}, nil
	case query.Neg[expr.Expr]:
		sub, err := f.Format(n.Sub)
		if err != nil {
			return nil, err
		}
		return bson.M{"$nor": []bson.M{sub}}, nil
	case query.Score[expr.Expr]:
		// Constant scores do not affect filtering.
		return f.Format(n.Sub)
	case query.Params[expr.Expr]:
		// Local parameters have no BSON counterpart.
		return f.Format(n.Sub)
	}
	return nil, fmt.Errorf("unsupported query node type %T", q)
}

// defaultFieldFilter turns a default-field query into either a $text search
// or a regex match across the configured default fields.
func (f *Formatter) defaultFieldFilter(e expr.Expr) (bson.M, error) {
	text, err := searchText(e)
	if err != nil {
		return nil, err
	}
	if f.textSearch {
		return bson.M{"$text": bson.M{"$search": text}}, nil
	}
	if len(f.defaultFields) == 0 {
		return nil, errors.New("default-field query requires text search or default fields")
	}
	conditions := make([]bson.M, 0, len(f.defaultFields))
	for _, field := range f.defaultFields {
		conditions = append(conditions, bson.M{field: bson.M{"$regex": text, "$options": "i"}})
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return bson.M{"$or": conditions}, nil
}

func searchText(e expr.Expr) (string, error) {
	switch n := e.(type) {
	case expr.WordExpr:
		return n.Value(), nil
	case expr.WildExpr:
		return n.Value(), nil
	case expr.PhraseExpr:
		words := n.Words()
		values := make([]string, len(words))
		for i, word := range words {
			values[i] = word.Value()
		}
		return strings.Join(values, " "), nil
	}
	return "", fmt.Errorf("expression type %T cannot be used as search text", e)
}

// mergeAnd merges two conditions, folding distinct simple field:value pairs
// into one document and falling back to $and otherwise.
func mergeAnd(left, right bson.M) bson.M {
	if isSimpleFieldValue(left) && isSimpleFieldValue(right) {
		merged := bson.M{}
		for k, v := range left {
			merged[k] = v
		}
		for k, v := range right {
			if _, exists := merged[k]; exists {
				return bson.M{"$and": []bson.M{left, right}}
			}
			merged[k] = v
		}
		return merged
	}
	return bson.M{"$and": []bson.M{left, right}}
}

// isSimpleFieldValue checks if a condition is a single field:value pair
// without top-level operators.
func isSimpleFieldValue(condition bson.M) bool {
	if len(condition) != 1 {
		return false
	}
	for key := range condition {
		if strings.HasPrefix(key, "$") {
			return false
		}
	}
	return true
}

// fieldValue converts an expression into the value side of a field match.
func fieldValue(e expr.Expr) (interface{}, error) {
	switch n := e.(type) {
	case expr.IntExpr:
		return n.Value(), nil
	case expr.FloatExpr:
		return n.Value(), nil
	case expr.BoolExpr:
		return n.Value(), nil
	case expr.WordExpr:
		return n.Value(), nil
	case expr.PhraseExpr:
		text, err := searchText(n)
		if err != nil {
			return nil, err
		}
		return text, nil
	case expr.WildExpr:
		return wildcardFilter(n.Value()), nil
	case expr.RegexpExpr:
		return bson.M{"$regex": n.Pattern()}, nil
	case expr.DateTimeExpr:
		return datetimeValue(n), nil
	case expr.BoostExpr:
		// Boosts affect ranking, not filtering.
		return fieldValue(n.Operand())
	case expr.RangeExpr:
		return rangeFilter(n)
	case expr.FuzzExpr:
		return nil, errors.New("fuzzy matching has no BSON filter equivalent")
	}
	return nil, fmt.Errorf("unsupported expression type %T", e)
}

// wildcardFilter converts a wildcard token into an anchored regex filter,
// anchoring each end that is not wildcarded.
func wildcardFilter(token string) bson.M {
	pattern := strings.ReplaceAll(token, "*", ".*")
	pattern = strings.ReplaceAll(pattern, "?", ".")
	startsWild := strings.HasPrefix(token, "*")
	endsWild := strings.HasSuffix(token, "*")
	if !startsWild {
		pattern = "^" + pattern
	}
	if !endsWild {
		pattern = pattern + "$"
	}
	return bson.M{"$regex": pattern, "$options": "i"}
}

// datetimeValue rebuilds a time.Time from the supplied components; missing
// trailing components default to the start of the period.
func datetimeValue(d expr.DateTimeExpr) time.Time {
	components := d.Components()
	parts := [7]int{0, 1, 1, 0, 0, 0, 0}
	copy(parts[:], components)
	return time.Date(parts[0], time.Month(parts[1]), parts[2],
		parts[3], parts[4], parts[5], parts[6]*int(time.Millisecond), time.UTC)
}

func rangeFilter(r expr.RangeExpr) (interface{}, error) {
	result := bson.M{}
	if r.Lo().Kind() != expr.BoundUnbounded {
		value, err := fieldValue(r.Lo().Expr())
		if err != nil {
			return nil, err
		}
		operator := "$gte"
		if r.Lo().Kind() == expr.BoundExclusive {
			operator = "$gt"
		}
		result[operator] = value
	}
	if r.Hi().Kind() != expr.BoundUnbounded {
		value, err := fieldValue(r.Hi().Expr())
		if err != nil {
			return nil, err
		}
		operator := "$lte"
		if r.Hi().Kind() == expr.BoundExclusive {
			operator = "$lt"
		}
		result[operator] = value
	}
	return result, nil
}
