// Package factory provides factory functions for creating parsers and
// formatters.
package factory

import (
	"fmt"

	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/formatter"
	bsonformatter "github.com/kyle-williams-1/lucenic/formatter/bson"
	solrformatter "github.com/kyle-williams-1/lucenic/formatter/solr"
	"github.com/kyle-williams-1/lucenic/language"
	"github.com/kyle-williams-1/lucenic/language/lucene"
)

// CreateParser creates a parser based on the language type.
func CreateParser(langType config.LanguageType) (language.Parser, error) {
	switch langType {
	case config.LanguageLucene:
		return lucene.New(), nil
	default:
		return nil, fmt.Errorf("unsupported language type: %s", langType)
	}
}

// CreateFormatter creates a text formatter based on the formatter type.
func CreateFormatter(formatterType config.FormatterType) (formatter.TextFormatter, error) {
	switch formatterType {
	case config.FormatterSolr:
		return solrformatter.New(), nil
	default:
		return nil, fmt.Errorf("unsupported formatter type: %s", formatterType)
	}
}

// CreateSolrFormatter creates a Solr text formatter honoring the config's
// operator mode.
func CreateSolrFormatter(cfg *config.Config) *solrformatter.Formatter {
	return solrformatter.NewWithConfig(cfg)
}

// CreateBSONFormatter creates a BSON formatter honoring the config's text
// search mode and default fields.
func CreateBSONFormatter(cfg *config.Config) formatter.BSONFormatter {
	return bsonformatter.NewWithConfig(cfg)
}
