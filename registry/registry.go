// Package registry provides dynamic discovery and registration of languages
// and formatters.
package registry

import (
	"fmt"

	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/formatter"
	"github.com/kyle-williams-1/lucenic/language"
)

// LanguageFactory creates a new language parser instance.
type LanguageFactory func() language.Parser

// FormatterFactory creates a new text formatter instance.
type FormatterFactory func() formatter.TextFormatter

// LanguageRegistry manages available language parsers.
type LanguageRegistry struct {
	languages map[config.LanguageType]LanguageFactory
}

// FormatterRegistry manages available text formatters. The BSON formatter is
// not registered here; it produces bson.M rather than text and is created
// through the factory package.
type FormatterRegistry struct {
	formatters map[config.FormatterType]FormatterFactory
}

// Registry combines language and formatter registries.
type Registry struct {
	Languages  *LanguageRegistry
	Formatters *FormatterRegistry
}

// New creates a new empty registry. Language and formatter packages register
// themselves with the global DefaultRegistry from their init functions.
func New() *Registry {
	return &Registry{
		Languages:  &LanguageRegistry{languages: make(map[config.LanguageType]LanguageFactory)},
		Formatters: &FormatterRegistry{formatters: make(map[config.FormatterType]FormatterFactory)},
	}
}

// RegisterLanguage registers a language factory.
func (lr *LanguageRegistry) RegisterLanguage(langType config.LanguageType, factory LanguageFactory) {
	lr.languages[langType] = factory
}

// RegisterFormatter registers a formatter factory.
func (fr *FormatterRegistry) RegisterFormatter(formatterType config.FormatterType, factory FormatterFactory) {
	fr.formatters[formatterType] = factory
}

// GetLanguage creates a language parser instance.
func (lr *LanguageRegistry) GetLanguage(langType config.LanguageType) (language.Parser, error) {
	factory, exists := lr.languages[langType]
	if !exists {
		return nil, fmt.Errorf("unsupported language type: %s", langType)
	}
	return factory(), nil
}

// GetFormatter creates a text formatter instance.
func (fr *FormatterRegistry) GetFormatter(formatterType config.FormatterType) (formatter.TextFormatter, error) {
	factory, exists := fr.formatters[formatterType]
	if !exists {
		return nil, fmt.Errorf("unsupported formatter type: %s", formatterType)
	}
	return factory(), nil
}

// ListLanguages returns all registered language types.
func (lr *LanguageRegistry) ListLanguages() []config.LanguageType {
	var languages []config.LanguageType
	for langType := range lr.languages {
		languages = append(languages, langType)
	}
	return languages
}

// ListFormatters returns all registered formatter types.
func (fr *FormatterRegistry) ListFormatters() []config.FormatterType {
	var formatters []config.FormatterType
	for formatterType := range fr.formatters {
		formatters = append(formatters, formatterType)
	}
	return formatters
}

// ValidateConfig validates that a language-formatter combination is supported.
func (r *Registry) ValidateConfig(cfg *config.Config) error {
	if _, err := r.Languages.GetLanguage(cfg.Language); err != nil {
		return fmt.Errorf("invalid language: %w", err)
	}
	if cfg.Formatter == config.FormatterBSON {
		return nil
	}
	if _, err := r.Formatters.GetFormatter(cfg.Formatter); err != nil {
		return fmt.Errorf("invalid formatter: %w", err)
	}
	return nil
}

// Global registry instance
var DefaultRegistry = New()

// RegisterLanguage registers a language with the global registry.
func RegisterLanguage(langType config.LanguageType, factory LanguageFactory) {
	DefaultRegistry.Languages.RegisterLanguage(langType, factory)
}

// RegisterFormatter registers a formatter with the global registry.
func RegisterFormatter(formatterType config.FormatterType, factory FormatterFactory) {
	DefaultRegistry.Formatters.RegisterFormatter(formatterType, factory)
}
