// Package formatter provides interfaces for query compilers.
package formatter

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kyle-williams-1/lucenic/expr"
	"github.com/kyle-williams-1/lucenic/query"
)

// Formatter compiles a validated query tree into a specific output type.
type Formatter[T any] interface {
	Format(q query.Query[expr.Expr]) (T, error)
}

// Type aliases for formatter types
type TextFormatter = Formatter[string]
type BSONFormatter = Formatter[bson.M]
