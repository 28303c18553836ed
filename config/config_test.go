package config

import (
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Language != LanguageLucene {
		t.Errorf("Language = %v, want %v", cfg.Language, LanguageLucene)
	}
	if cfg.Formatter != FormatterSolr {
		t.Errorf("Formatter = %v, want %v", cfg.Formatter, FormatterSolr)
	}
	if cfg.Operator != OperatorImplicit {
		t.Errorf("Operator = %v, want %v", cfg.Operator, OperatorImplicit)
	}
	if cfg.TextSearch {
		t.Error("TextSearch should default to false")
	}
	if len(cfg.DefaultFields) != 0 {
		t.Errorf("DefaultFields = %v, want empty", cfg.DefaultFields)
	}
}

func TestBuilderChain(t *testing.T) {
	cfg := Default().
		WithFormatter(FormatterBSON).
		WithOperatorMode(OperatorExplicit).
		WithDefaultFields([]string{"title", "body"}).
		WithTextSearch(true)

	if cfg.Formatter != FormatterBSON {
		t.Errorf("Formatter = %v, want %v", cfg.Formatter, FormatterBSON)
	}
	if cfg.Operator != OperatorExplicit {
		t.Errorf("Operator = %v, want %v", cfg.Operator, OperatorExplicit)
	}
	if !reflect.DeepEqual(cfg.DefaultFields, []string{"title", "body"}) {
		t.Errorf("DefaultFields = %v, want [title body]", cfg.DefaultFields)
	}
	if !cfg.TextSearch {
		t.Error("TextSearch should be enabled")
	}
}
