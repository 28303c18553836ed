// Package config provides configuration for language and formatter selection.
package config

// LanguageType represents the type of query language front end to use.
type LanguageType string

const (
	// LanguageLucene represents Lucene-style query syntax
	LanguageLucene LanguageType = "lucene"
)

// FormatterType represents the type of output formatter to use.
type FormatterType string

const (
	// FormatterSolr represents Solr query-string text output
	FormatterSolr FormatterType = "solr"
	// FormatterBSON represents MongoDB BSON filter output
	FormatterBSON FormatterType = "bson"
)

// OperatorMode controls how conjunctions render in Solr text.
type OperatorMode int

const (
	// OperatorImplicit renders conjunctions as space-separated operands.
	OperatorImplicit OperatorMode = iota
	// OperatorExplicit renders conjunctions with an explicit AND.
	OperatorExplicit
)

// Config represents the configuration for a compiler pipeline.
type Config struct {
	Language      LanguageType
	Formatter     FormatterType
	Operator      OperatorMode
	DefaultFields []string
	TextSearch    bool
}

// Default returns the default configuration with the Lucene front end and the
// Solr text formatter in implicit-AND mode.
func Default() *Config {
	return &Config{
		Language:      LanguageLucene,
		Formatter:     FormatterSolr,
		Operator:      OperatorImplicit,
		DefaultFields: []string{},
	}
}

// WithLanguage sets the language type and returns the config.
func (c *Config) WithLanguage(lang LanguageType) *Config {
	c.Language = lang
	return c
}

// WithFormatter sets the formatter type and returns the config.
func (c *Config) WithFormatter(formatter FormatterType) *Config {
	c.Formatter = formatter
	return c
}

// WithOperatorMode sets the conjunction rendering mode and returns the config.
func (c *Config) WithOperatorMode(mode OperatorMode) *Config {
	c.Operator = mode
	return c
}

// WithDefaultFields sets the fields the BSON formatter searches for
// default-field queries and returns the config.
func (c *Config) WithDefaultFields(fields []string) *Config {
	c.DefaultFields = fields
	return c
}

// WithTextSearch enables $text search for default-field queries in the BSON
// formatter and returns the config.
func (c *Config) WithTextSearch(on bool) *Config {
	c.TextSearch = on
	return c
}
