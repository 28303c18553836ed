// Package lucenic builds, validates, canonicalizes and compiles Lucene/Solr
// query trees. Trees are constructed either through the shape-checked
// builders in this package and the expr package, which cannot produce an
// invalid query, or through the untrusted raw builder and the Lucene text
// parser, whose output must pass the type checker before compiling.
package lucenic

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kyle-williams-1/lucenic/canon"
	"github.com/kyle-williams-1/lucenic/check"
	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/expr"
	"github.com/kyle-williams-1/lucenic/factory"
	"github.com/kyle-williams-1/lucenic/formatter"
	solrformatter "github.com/kyle-williams-1/lucenic/formatter/solr"
	"github.com/kyle-williams-1/lucenic/language"
	"github.com/kyle-williams-1/lucenic/query"
	"github.com/kyle-williams-1/lucenic/raw"
	"github.com/kyle-williams-1/lucenic/registry"
)

// ErrShapeViolation reports that an untrusted tree violates the shape
// compatibility table. The checker is all-or-nothing and carries no location
// detail; callers needing finer-grained diagnostics must validate
// incrementally themselves.
var ErrShapeViolation = errors.New("query failed shape validation")

// Q is a validated query tree, guaranteed compilable by construction.
type Q = query.Query[expr.Expr]

// DefaultField targets the default field with e.
func DefaultField(e expr.Expr) Q { return query.Default[expr.Expr]{Expr: e} }

// Field targets the named field with e.
func Field(name string, e expr.Expr) Q { return query.Field[expr.Expr]{Name: name, Expr: e} }

// And is the conjunction of two queries.
func And(left, right Q) Q { return query.And[expr.Expr]{Left: left, Right: right} }

// Or is the disjunction of two queries.
func Or(left, right Q) Q { return query.Or[expr.Expr]{Left: left, Right: right} }

// Not matches left with right subtracted, rendering as (left -right). For a
// standalone must-not clause use Neg.
func Not(left, right Q) Q { return query.AndNot[expr.Expr]{Left: left, Right: right} }

// Score sets the constant score of q, rendering as q^=factor.
func Score(q Q, factor float64) Q { return query.Score[expr.Expr]{Sub: q, Factor: factor} }

// Neg is the logical must-not of q, rendering with a leading -.
func Neg(q Q) Q { return query.Neg[expr.Expr]{Sub: q} }

// WithParams annotates q with local parameters, rendering as a {!...} block.
func WithParams(params []query.Param, q Q) Q {
	copied := make([]query.Param, len(params))
	copy(copied, params)
	return query.Params[expr.Expr]{Params: copied, Sub: q}
}

// Canonicalize rewrites q into its canonical form: params hoisted, double
// negations removed, nested scores collapsed to the outermost.
// Canonicalization is optional; compiling a non-canonical tree still produces
// valid text.
func Canonicalize(q Q) Q { return canon.Canonicalize(q) }

// Check promotes an untrusted query tree into a validated one. It returns
// ErrShapeViolation when the tree violates the shape compatibility table.
func Check(q raw.Query) (Q, error) {
	checked, ok := check.Query(q)
	if !ok {
		return nil, ErrShapeViolation
	}
	return checked, nil
}

// Compile renders a validated tree into the parameter-encoded Solr form
// q=<params><tree>, followed by &fq=<params><tree> when filter-query
// parameters are supplied, using the default implicit-AND formatter.
func Compile(queryParams, filterParams []query.Param, q Q) (string, error) {
	return solrformatter.New().Compile(queryParams, filterParams, q)
}

// Render renders the bare tree text without the q= encoding, for callers
// composing their own q/fq parameter pairs.
func Render(q Q) (string, error) {
	return solrformatter.New().Format(q)
}

// Parse parses Lucene query text into a validated tree using the default
// configuration.
func Parse(text string) (Q, error) {
	compiler := New()
	return compiler.Parse(text)
}

// Compiler ties a language front end and formatter back ends together under
// one configuration.
type Compiler struct {
	Config *config.Config

	parser language.Parser
	text   *solrformatter.Formatter
}

// The Solr formatter is the compiler's text back end.
var _ formatter.TextFormatter = (*solrformatter.Formatter)(nil)

// New creates a compiler with the default configuration.
func New() *Compiler {
	compiler, err := NewWithConfig(config.Default())
	if err != nil {
		// The default configuration always validates.
		panic(err)
	}
	return compiler
}

// NewWithConfig creates a compiler for the given configuration.
func NewWithConfig(cfg *config.Config) (*Compiler, error) {
	if err := registry.DefaultRegistry.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	parser, err := factory.CreateParser(cfg.Language)
	if err != nil {
		return nil, err
	}
	return &Compiler{
		Config: cfg,
		parser: parser,
		text:   factory.CreateSolrFormatter(cfg),
	}, nil
}

// Parse parses query text through the configured language front end and
// promotes the result through the type checker.
func (c *Compiler) Parse(text string) (Q, error) {
	parsed, err := c.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return Check(parsed)
}

// Canonicalize rewrites q into its canonical form.
func (c *Compiler) Canonicalize(q Q) Q { return canon.Canonicalize(q) }

// Compile renders a validated tree in the configured operator mode.
func (c *Compiler) Compile(queryParams, filterParams []query.Param, q Q) (string, error) {
	return c.text.Compile(queryParams, filterParams, q)
}

// Render renders the bare tree text in the configured operator mode.
func (c *Compiler) Render(q Q) (string, error) {
	return c.text.Format(q)
}

// CompileBSON renders a validated tree as a MongoDB BSON filter, honoring the
// config's text search mode and default fields.
func (c *Compiler) CompileBSON(q Q) (bson.M, error) {
	return factory.CreateBSONFormatter(c.Config).Format(q)
}
