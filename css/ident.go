package css

import (
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// NonIdentifiers returns element, id and class parts whose values would not
// lex as a single CSS identifier (universal selector is allowed for element).
// Attribute and pseudo-class values are free-form and never reported.
func (b *Builder) NonIdentifiers() []Part {
	var bad []Part
	for _, p := range b.Parts() {
		switch p.Fragment {
		case FragmentElement:
			if p.Value == "*" {
				continue
			}
		case FragmentID, FragmentClass:
		default:
			continue
		}
		if !isIdent(p.Value) {
			bad = append(bad, p)
		}
	}
	return bad
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	l := css.NewLexer(parse.NewInputString(s))
	tt, data := l.Next()
	if tt != css.IdentToken || len(data) != len(s) {
		return false
	}
	tt, _ = l.Next()
	return tt == css.ErrorToken
}
