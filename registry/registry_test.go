package registry_test

import (
	"testing"

	"github.com/kyle-williams-1/lucenic/config"
	_ "github.com/kyle-williams-1/lucenic/formatter/solr"
	"github.com/kyle-williams-1/lucenic/language"
	"github.com/kyle-williams-1/lucenic/language/lucene"
	"github.com/kyle-williams-1/lucenic/registry"
)

func TestDefaultRegistrations(t *testing.T) {
	if _, err := registry.DefaultRegistry.Languages.GetLanguage(config.LanguageLucene); err != nil {
		t.Fatalf("lucene language not registered: %v", err)
	}
	if _, err := registry.DefaultRegistry.Formatters.GetFormatter(config.FormatterSolr); err != nil {
		t.Fatalf("solr formatter not registered: %v", err)
	}
}

func TestEmptyRegistry(t *testing.T) {
	r := registry.New()
	if _, err := r.Languages.GetLanguage(config.LanguageLucene); err == nil {
		t.Fatal("GetLanguage() should fail on an empty registry")
	}
	if _, err := r.Formatters.GetFormatter(config.FormatterSolr); err == nil {
		t.Fatal("GetFormatter() should fail on an empty registry")
	}
}

func TestRegisterAndList(t *testing.T) {
	r := registry.New()
	custom := config.LanguageType("custom")
	r.Languages.RegisterLanguage(custom, func() language.Parser { return lucene.New() })

	parser, err := r.Languages.GetLanguage(custom)
	if err != nil {
		t.Fatalf("GetLanguage() error: %v", err)
	}
	if parser == nil {
		t.Fatal("GetLanguage() returned nil parser")
	}

	languages := r.Languages.ListLanguages()
	if len(languages) != 1 || languages[0] != custom {
		t.Fatalf("ListLanguages() = %v, want [%v]", languages, custom)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{"Default", config.Default(), false},
		{"BSONFormatterAllowed", config.Default().WithFormatter(config.FormatterBSON), false},
		{"UnknownLanguage", config.Default().WithLanguage("sql"), true},
		{"UnknownFormatter", config.Default().WithFormatter("xml"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := registry.DefaultRegistry.ValidateConfig(test.cfg)
			if (err != nil) != test.wantErr {
				t.Fatalf("ValidateConfig() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}
