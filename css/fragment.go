package css

// Fragment identifies the kind of a compound selector part. Its numeric value
// is the rank used to keep parts in canonical order: a part may never follow
// a part of higher rank.
type Fragment int

const (
	FragmentElement       Fragment = iota // div, a, *
	FragmentID                            // #main
	FragmentClass                         // .container
	FragmentAttribute                     // [href$=".png"]
	FragmentPseudoClass                   // :focus
	FragmentPseudoElement                 // ::before
)

// String returns the name of the fragment kind.
func (f Fragment) String() string {
	switch f {
	case FragmentElement:
		return "element"
	case FragmentID:
		return "id"
	case FragmentClass:
		return "class"
	case FragmentAttribute:
		return "attribute"
	case FragmentPseudoClass:
		return "pseudo-class"
	case FragmentPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// unique reports whether the fragment may occur at most once in a compound selector.
func (f Fragment) unique() bool {
	return f == FragmentElement || f == FragmentID || f == FragmentPseudoElement
}

// render decorates raw value the way it appears in selector text.
func (f Fragment) render(value string) string {
	switch f {
	case FragmentID:
		return "#" + value
	case FragmentClass:
		return "." + value
	case FragmentAttribute:
		return "[" + value + "]"
	case FragmentPseudoClass:
		return ":" + value
	case FragmentPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// Part is a single fragment of a compound selector as it was appended.
type Part struct {
	Fragment Fragment
	Value    string
}

// String returns decorated part text, i.e. ".container" for class "container".
func (p Part) String() string {
	return p.Fragment.render(p.Value)
}

// Conventional combinators. Any other string is accepted by Combine and
// rendered verbatim.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)
