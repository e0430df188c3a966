package css_test

import (
	"testing"

	"selb/css"
)

func TestFacade_StartsFromAnyFragment(t *testing.T) {
	tests := []struct {
		name     string
		got      *css.Builder
		expected string
	}{
		{"element", css.Element("div"), "div"},
		{"id", css.ID("main"), "#main"},
		{"class", css.Class("note"), ".note"},
		{"attr", css.Attr("type=checkbox"), "[type=checkbox]"},
		{"pseudo-class", css.PseudoClass("checked"), ":checked"},
		{"pseudo-element", css.PseudoElement("after"), "::after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Stringify(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFacade_ReturnsFreshBuilders(t *testing.T) {
	a := css.Element("a")
	b := css.Element("a")
	if a == b {
		t.Fatal("each call must create a new builder")
	}
	a.Class("x")
	if b.Stringify() != "a" {
		t.Errorf("builders share state: %q", b.Stringify())
	}
}

func TestFacade_CombineArgumentOrder(t *testing.T) {
	left := css.Element("label")
	right := css.Element("input")

	got := css.Combine(left, css.NextSibling, right)
	if got != left {
		t.Fatal("Combine must return left operand")
	}
	if s := got.Stringify(); s != "label + input" {
		t.Errorf("expected %q, got %q", "label + input", s)
	}
}
