package recipe

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"selb/css"
)

func TestBuild(t *testing.T) {
	r, err := Parse([]byte(tablesRecipe))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sheet, err := r.Build(zaptest.NewLogger(t), Options{Header: "tables"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	expected := `/* tables */

table#data {
  border-collapse: collapse;
}

tr:nth-of-type(even)   td {
  background: #eee;
  color: black;
}
`
	if got := sheet.String(); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestBuild_CollectsRuleErrors(t *testing.T) {
	r := &Recipe{
		Name: "broken",
		Rules: []Rule{
			{Selector: []string{"el=a"}},
			{Selector: []string{"id=x", "id=y"}},
			{Selector: []string{"el=p", "+"}},
			{Selector: []string{"cls=z"}},
		},
	}

	sheet, err := r.Build(nil, Options{})
	if err == nil {
		t.Fatal("expected error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), err)
	}
	if !errors.Is(errs[0], css.ErrDuplicateFragment) {
		t.Errorf("expected duplicate error first, got %v", errs[0])
	}
	if !errors.Is(errs[1], ErrDanglingCombinator) {
		t.Errorf("expected dangling combinator second, got %v", errs[1])
	}

	if len(sheet.Rules) != 2 || sheet.Rules[0].Selector != "a" || sheet.Rules[1].Selector != ".z" {
		t.Errorf("unexpected rules %+v", sheet.Rules)
	}
}

func TestBuild_Sort(t *testing.T) {
	r := &Recipe{
		Name: "headings",
		Rules: []Rule{
			{Selector: []string{"el=h10"}},
			{Selector: []string{"el=h2"}},
			{Selector: []string{"el=h1"}},
		},
	}

	sheet, err := r.Build(zap.NewNop(), Options{SortRules: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	expected := []string{"h1", "h2", "h10"}
	for i, rule := range sheet.Rules {
		if rule.Selector != expected[i] {
			t.Errorf("rule %d: expected %q, got %q", i, expected[i], rule.Selector)
		}
	}
}

func TestBuild_LintIdentifiers(t *testing.T) {
	r := &Recipe{
		Name: "lint",
		Rules: []Rule{
			{Selector: []string{"el=div", "cls=ok", ">", "id=2col"}},
		},
	}

	core, logs := observer.New(zapcore.WarnLevel)
	sheet, err := r.Build(zap.New(core), Options{LintIdentifiers: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// lint never fails the rule
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected rule to be kept, got %d rules", len(sheet.Rules))
	}

	warnings := logs.FilterMessage("Selector part is not a CSS identifier").All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if v := warnings[0].ContextMap()["value"]; v != "2col" {
		t.Errorf("expected warning for 2col, got %v", v)
	}

	logs.TakeAll()
	if _, err := r.Build(zap.New(core), Options{}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("lint disabled, expected no warnings, got %d", logs.Len())
	}
}
