package lucene

import (
	"reflect"
	"testing"

	"github.com/kyle-williams-1/lucenic/raw"
)

func TestParseFieldValues(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  raw.Query
	}{
		{"Word", "name:john", raw.Field("name", raw.Word("john"))},
		{"Int", "age:30", raw.Field("age", raw.Int(30))},
		{"NegativeInt", "delta:-3", raw.Field("delta", raw.Int(-3))},
		{"Float", "score:3.5", raw.Field("score", raw.Float(3.5))},
		{"Bool", "active:true", raw.Field("active", raw.Bool(true))},
		{"Wildcard", "name:jo*", raw.Field("name", raw.Wild("jo*"))},
		{"QuestionWildcard", "name:j?hn", raw.Field("name", raw.Wild("j?hn"))},
		{"Regex", "name:/jo.n/", raw.Field("name", raw.Regexp("jo.n"))},
		{
			"QuotedPhrase",
			`name:"John Doe"`,
			raw.Field("name", raw.Phrase(raw.Word("John"), raw.Word("Doe"))),
		},
		{
			"SingleQuotedPhrase",
			`name:'John Doe'`,
			raw.Field("name", raw.Phrase(raw.Word("John"), raw.Word("Doe"))),
		},
		{
			"QuotedSingleWordIsStillPhrase",
			`name:"John"`,
			raw.Field("name", raw.Phrase(raw.Word("John"))),
		},
		{"Fuzzy", "title:solar~1", raw.Field("title", raw.Fuzz(raw.Word("solar"), 1))},
		{"Boost", "title:solar^2.5", raw.Field("title", raw.Boost(raw.Word("solar"), 2.5))},
		{
			"BoostedFuzzy",
			"title:solar~1^2.5",
			raw.Field("title", raw.Boost(raw.Fuzz(raw.Word("solar"), 1), 2.5)),
		},
	}

	p := New()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := p.Parse(test.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", test.query, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("Parse(%q) = %#v, want %#v", test.query, got, test.want)
			}
		})
	}
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  raw.Query
	}{
		{
			"InclusiveBoth",
			"age:[18 TO 65]",
			raw.Field("age", raw.To(raw.Incl(raw.Int(18)), raw.Incl(raw.Int(65)))),
		},
		{
			"ExclusiveHigh",
			"age:[18 TO 65}",
			raw.Field("age", raw.To(raw.Incl(raw.Int(18)), raw.Excl(raw.Int(65)))),
		},
		{
			"ExclusiveBoth",
			"age:{18 TO 65}",
			raw.Field("age", raw.To(raw.Excl(raw.Int(18)), raw.Excl(raw.Int(65)))),
		},
		{
			"OpenHigh",
			"age:[18 TO *]",
			raw.Field("age", raw.To(raw.Incl(raw.Int(18)), raw.Star())),
		},
		{
			"OpenLow",
			"age:[* TO 65]",
			raw.Field("age", raw.To(raw.Star(), raw.Incl(raw.Int(65)))),
		},
		{
			"WordRange",
			"name:[alpha TO omega]",
			raw.Field("name", raw.To(raw.Incl(raw.Word("alpha")), raw.Incl(raw.Word("omega")))),
		},
		{
			"DateRange",
			"created:[2020-01-01 TO 2024-01-01}",
			raw.Field("created", raw.To(
				raw.Incl(raw.Date(2020, 1, 1)),
				raw.Excl(raw.Date(2024, 1, 1)),
			)),
		},
	}

	p := New()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := p.Parse(test.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", test.query, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("Parse(%q) = %#v, want %#v", test.query, got, test.want)
			}
		})
	}
}

func TestParseDateTimes(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  raw.Query
	}{
		{
			"DateOnly",
			"created:2023-01-15",
			raw.Field("created", raw.Date(2023, 1, 15)),
		},
		{
			"SlashDate",
			"created:2023/01/15",
			raw.Field("created", raw.Date(2023, 1, 15)),
		},
		{
			"FullTimestamp",
			"created:2023-01-15T10:30:00Z",
			raw.Field("created", raw.Date(2023, 1, 15, 10, 30, 0, 0)),
		},
	}

	p := New()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := p.Parse(test.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", test.query, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("Parse(%q) = %#v, want %#v", test.query, got, test.want)
			}
		})
	}
}

func TestParseBooleanStructure(t *testing.T) {
	a := raw.Field("a", raw.Int(1))
	b := raw.Field("b", raw.Int(2))
	c := raw.Field("c", raw.Int(3))
	tests := []struct {
		name  string
		query string
		want  raw.Query
	}{
		{"And", "a:1 AND b:2", raw.And(a, b)},
		{"Or", "a:1 OR b:2", raw.Or(a, b)},
		{"Not", "NOT a:1", raw.Neg(a)},
		{"AndNot", "a:1 AND NOT b:2", raw.And(a, raw.Neg(b))},
		{"AndBindsTighterThanOr", "a:1 OR b:2 AND c:3", raw.Or(a, raw.And(b, c))},
		{"GroupOverridesPrecedence", "(a:1 OR b:2) AND c:3", raw.And(raw.Or(a, b), c)},
		{"LeftAssociativeAnd", "a:1 AND b:2 AND c:3", raw.And(raw.And(a, b), c)},
		{"LeftAssociativeOr", "a:1 OR b:2 OR c:3", raw.Or(raw.Or(a, b), c)},
	}

	p := New()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := p.Parse(test.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", test.query, err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("Parse(%q) = %#v, want %#v", test.query, got, test.want)
			}
		})
	}
}

func TestParseBareTerms(t *testing.T) {
	t.Run("SingleTerm", func(t *testing.T) {
		got, err := New().Parse("solar")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		want := raw.DefaultField(raw.Word("solar"))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Parse() = %#v, want %#v", got, want)
		}
	})

	t.Run("MultipleTermsJoinedByAnd", func(t *testing.T) {
		got, err := New().Parse("solar power")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		want := raw.And(
			raw.DefaultField(raw.Word("solar")),
			raw.DefaultField(raw.Word("power")),
		)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Parse() = %#v, want %#v", got, want)
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"Empty", ""},
		{"WhitespaceOnly", "   \t\n"},
		{"UnclosedParen", "(a:1"},
		{"UnmatchedClosingParen", "a:1)"},
	}

	p := New()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := p.Parse(test.query); err == nil {
				t.Fatalf("Parse(%q) should fail", test.query)
			}
		})
	}
}
