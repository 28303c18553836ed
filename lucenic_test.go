package lucenic

import (
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kyle-williams-1/lucenic/config"
	"github.com/kyle-williams-1/lucenic/expr"
	"github.com/kyle-williams-1/lucenic/query"
	"github.com/kyle-williams-1/lucenic/raw"
)

func TestCompile(t *testing.T) {
	t.Run("BareField", func(t *testing.T) {
		got, err := Compile(nil, nil, Field("foo", expr.Word("bar")))
		if err != nil {
			t.Fatalf("Compile() error: %v", err)
		}
		if want := "q=foo:bar"; got != want {
			t.Fatalf("Compile() = %q, want %q", got, want)
		}
	})

	t.Run("WithFilterQuery", func(t *testing.T) {
		got, err := Compile(
			[]query.Param{query.DefaultFieldParam("title")},
			[]query.Param{query.CacheParam(true)},
			DefaultField(expr.Fuzz(expr.Word("bar"), 1)),
		)
		if err != nil {
			t.Fatalf("Compile() error: %v", err)
		}
		if want := "q={!df=title}bar~1&fq={!cache=true}bar~1"; got != want {
			t.Fatalf("Compile() = %q, want %q", got, want)
		}
	})
}

func TestBuilderRender(t *testing.T) {
	q := And(
		Field("title", expr.Fuzz(expr.Word("solar"), 1)),
		Field("year", expr.To(expr.Incl(expr.Int(2020)), expr.Excl(expr.Int(2024)))),
	)
	got, err := Render(q)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if want := "(title:solar~1 year:[2020 TO 2024})"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		q, err := Parse("title:solar~1 AND year:[2020 TO 2024}")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		got, err := Render(q)
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "(title:solar~1 year:[2020 TO 2024})"; got != want {
			t.Fatalf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("ShapeViolation", func(t *testing.T) {
		_, err := Parse("age:5~1")
		if !errors.Is(err, ErrShapeViolation) {
			t.Fatalf("Parse() error = %v, want ErrShapeViolation", err)
		}
	})

	t.Run("SyntaxError", func(t *testing.T) {
		_, err := Parse("(a:1")
		if err == nil {
			t.Fatal("Parse() should fail on unbalanced parentheses")
		}
		if errors.Is(err, ErrShapeViolation) {
			t.Fatal("syntax errors should not report a shape violation")
		}
	})
}

func TestCheck(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		q, err := Check(raw.Field("title", raw.Word("solar")))
		if err != nil {
			t.Fatalf("Check() error: %v", err)
		}
		want := Field("title", expr.Word("solar"))
		if !reflect.DeepEqual(q, want) {
			t.Fatalf("Check() = %#v, want %#v", q, want)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Check(raw.Field("age", raw.Fuzz(raw.Int(5), 1)))
		if !errors.Is(err, ErrShapeViolation) {
			t.Fatalf("Check() error = %v, want ErrShapeViolation", err)
		}
	})
}

func TestCanonicalizeBeforeCompile(t *testing.T) {
	a := Field("a", expr.Int(1))
	b := Field("b", expr.Int(2))
	q := Canonicalize(And(WithParams([]query.Param{query.DefaultFieldParam("title")}, a), b))

	got, err := Render(q)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if want := "{!df=title}(a:1 b:2)"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestNewWithConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		compiler, err := NewWithConfig(config.Default())
		if err != nil {
			t.Fatalf("NewWithConfig() error: %v", err)
		}
		if compiler.Config == nil {
			t.Fatal("compiler config should be set")
		}
	})

	t.Run("ExplicitOperatorMode", func(t *testing.T) {
		compiler, err := NewWithConfig(config.Default().WithOperatorMode(config.OperatorExplicit))
		if err != nil {
			t.Fatalf("NewWithConfig() error: %v", err)
		}
		got, err := compiler.Render(And(Field("a", expr.Int(1)), Field("b", expr.Int(2))))
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if want := "(a:1 AND b:2)"; got != want {
			t.Fatalf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("UnknownLanguage", func(t *testing.T) {
		if _, err := NewWithConfig(config.Default().WithLanguage("sql")); err == nil {
			t.Fatal("NewWithConfig() should reject an unregistered language")
		}
	})
}

func TestCompileBSON(t *testing.T) {
	compiler := New()
	got, err := compiler.CompileBSON(Field("name", expr.Word("john")))
	if err != nil {
		t.Fatalf("CompileBSON() error: %v", err)
	}
	want := bson.M{"name": "john"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CompileBSON() = %v, want %v", got, want)
	}
}
