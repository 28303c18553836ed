// Package solr renders validated query trees into literal Solr query-string
// text. Rendering is a pure function of the tree: two structurally identical
// trees always produce byte-identical output.
package solr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/expr"
	"github.com/kyle-williams-1/lucenic/formatter"
	"github.com/kyle-williams-1/lucenic/query"
	"github.com/kyle-williams-1/lucenic/registry"
)

func init() {
	registry.RegisterFormatter(config.FormatterSolr, func() formatter.TextFormatter {
		return New()
	})
}

// Formatter represents a Solr text formatter for query trees.
type Formatter struct {
	operator config.OperatorMode
}

// New creates a new Solr formatter in implicit-AND mode.
func New() *Formatter {
	return &Formatter{operator: config.OperatorImplicit}
}

// NewWithConfig creates a new Solr formatter using the config's operator mode.
func NewWithConfig(cfg *config.Config) *Formatter {
	return &Formatter{operator: cfg.Operator}
}

// Ensure Formatter implements the generic interface
var _ formatter.TextFormatter = (*Formatter)(nil)

// Format renders a query tree without the surrounding q= parameter encoding.
func (f *Formatter) Format(q query.Query[expr.Expr]) (string, error) {
	var sb strings.Builder
	if err := f.renderQuery(&sb, q); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Compile renders the full parameter-encoded form: q=<params><tree>, followed
// by &fq=<params><tree> when filter-query parameters are supplied. Composing
// several q/fq pairs by & concatenation is left to the caller; Format exposes
// the bare tree text for that purpose.
func (f *Formatter) Compile(queryParams, filterParams []query.Param, q query.Query[expr.Expr]) (string, error) {
	tree, err := f.Format(q)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("q=")
	writeParamsBlock(&sb, queryParams)
	sb.WriteString(tree)
	if len(filterParams) > 0 {
		sb.WriteString("&fq=")
		writeParamsBlock(&sb, filterParams)
		sb.WriteString(tree)
	}
	return sb.String(), nil
}

// writeParamsBlock renders a {!k=v k2=v2} local-parameters block. An empty
// list renders nothing.
func writeParamsBlock(sb *strings.Builder, params []query.Param) {
	if len(params) == 0 {
		return
	}
	sb.WriteString("{!")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(p.Key()))
		sb.WriteByte('=')
		sb.WriteString(p.Value())
	}
	sb.WriteByte('}')
}

func (f *Formatter) renderQuery(sb *strings.Builder, q query.Query[expr.Expr]) error {
	switch n := q.(type) {
	case query.Default[expr.Expr]:
		return renderExpr(sb, n.Expr)
	case query.Field[expr.Expr]:
		sb.WriteString(n.Name)
		sb.WriteByte(':')
		return renderExpr(sb, n.Expr)
	case query.And[expr.Expr]:
		separator := " "
		if f.operator == config.OperatorExplicit {
			separator = " AND "
		}
		return f.renderBinary(sb, n.Left, separator, n.Right)
	case query.Or[expr.Expr]:
		return f.renderBinary(sb, n.Left, " OR ", n.Right)
	case query.AndNot[expr.Expr]:
		return f.renderBinary(sb, n.Left, " -", n.Right)
	case query.Score[expr.Expr]:
		if err := f.renderQuery(sb, n.Sub); err != nil {
			return err
		}
		sb.WriteString("^=")
		sb.WriteString(formatFloat(n.Factor))
		return nil
	case query.Neg[expr.Expr]:
		sb.WriteByte('-')
		return f.renderQuery(sb, n.Sub)
	case query.Params[expr.Expr]:
		writeParamsBlock(sb, n.Params)
		return f.renderQuery(sb, n.Sub)
	}
	return fmt.Errorf("unsupported query node type %T", q)
}

// renderBinary always parenthesizes, so nesting never depends on operator
// precedence.
func (f *Formatter) renderBinary(sb *strings.Builder, left query.Query[expr.Expr], separator string, right query.Query[expr.Expr]) error {
	sb.WriteByte('(')
	if err := f.renderQuery(sb, left); err != nil {
		return err
	}
	sb.WriteString(separator)
	if err := f.renderQuery(sb, right); err != nil {
		return err
	}
	sb.WriteByte(')')
	return nil
}

func renderExpr(sb *strings.Builder, e expr.Expr) error {
	switch n := e.(type) {
	case expr.IntExpr:
		sb.WriteString(strconv.FormatInt(n.Value(), 10))
		return nil
	case expr.FloatExpr:
		sb.WriteString(formatFloat(n.Value()))
		return nil
	case expr.BoolExpr:
		sb.WriteString(strconv.FormatBool(n.Value()))
		return nil
	case expr.WordExpr:
		sb.WriteString(n.Value())
		return nil
	case expr.WildExpr:
		sb.WriteString(n.Value())
		return nil
	case expr.RegexpExpr:
		sb.WriteByte('/')
		sb.WriteString(n.Pattern())
		sb.WriteByte('/')
		return nil
	case expr.PhraseExpr:
		sb.WriteByte('"')
		for i, word := range n.Words() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(word.Value())
		}
		sb.WriteByte('"')
		return nil
	case expr.DateTimeExpr:
		renderDateTime(sb, n)
		return nil
	case expr.FuzzExpr:
		if err := renderExpr(sb, n.Operand()); err != nil {
			return err
		}
		sb.WriteByte('~')
		sb.WriteString(strconv.Itoa(n.Distance()))
		return nil
	case expr.BoostExpr:
		if err := renderExpr(sb, n.Operand()); err != nil {
			return err
		}
		sb.WriteByte('^')
		sb.WriteString(formatFloat(n.Factor()))
		return nil
	case expr.RangeExpr:
		return renderRange(sb, n)
	}
	return fmt.Errorf("unsupported expression type %T", e)
}

func renderRange(sb *strings.Builder, r expr.RangeExpr) error {
	lo, hi := r.Lo(), r.Hi()
	if lo.Kind() == expr.BoundExclusive {
		sb.WriteByte('{')
	} else {
		sb.WriteByte('[')
	}
	if err := renderBoundExpr(sb, lo); err != nil {
		return err
	}
	sb.WriteString(" TO ")
	if err := renderBoundExpr(sb, hi); err != nil {
		return err
	}
	if hi.Kind() == expr.BoundExclusive {
		sb.WriteByte('}')
	} else {
		sb.WriteByte(']')
	}
	return nil
}

func renderBoundExpr(sb *strings.Builder, b expr.Bound) error {
	if b.Kind() == expr.BoundUnbounded {
		sb.WriteByte('*')
		return nil
	}
	return renderExpr(sb, b.Expr())
}

// datetimeLayouts holds the verb for each calendar component, in year through
// millisecond order.
var datetimeLayouts = [7]string{"%04d", "-%02d", "-%02d", "T%02d", ":%02d", ":%02d", ".%03d"}

// renderDateTime renders the supplied components only, quoted. Full
// seven-component timestamps carry a trailing Z; truncated values do not.
func renderDateTime(sb *strings.Builder, d expr.DateTimeExpr) {
	components := d.Components()
	sb.WriteByte('"')
	for i, component := range components {
		fmt.Fprintf(sb, datetimeLayouts[i], component)
	}
	if len(components) == len(datetimeLayouts) {
		sb.WriteByte('Z')
	}
	sb.WriteByte('"')
}

// formatFloat is the single numeric-to-text conversion used for boosts,
// scores and float literals. Integral values keep a .0 suffix, so a factor of
// 1 renders as 1.0 and 3.5 stays 3.5.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
