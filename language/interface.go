// Package language provides interfaces for query language parsers.
package language

import "github.com/kyle-williams-1/lucenic/raw"

// Parser represents a query language parser. Parsers produce untrusted raw
// trees; callers promote them with the check package before compiling.
type Parser interface {
	Parse(query string) (raw.Query, error)
}
