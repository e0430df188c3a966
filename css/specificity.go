package css

import "fmt"

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C].
type Specificity [3]int

// Less returns true if s < other (strictly).
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

// Add returns component-wise sum.
func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

func (s Specificity) String() string {
	return fmt.Sprintf("%d,%d,%d", s[0], s[1], s[2])
}

// Specificity computes specificity of the compound selector held by the
// builder. Combined right-hand side is plain text and is not counted. Each
// pseudo-class counts once regardless of its arguments, universal selector
// counts zero.
func (b *Builder) Specificity() Specificity {
	var s Specificity
	for _, p := range b.Parts() {
		switch p.Fragment {
		case FragmentID:
			s[0]++
		case FragmentClass, FragmentAttribute, FragmentPseudoClass:
			s[1]++
		case FragmentElement:
			if p.Value != "*" && p.Value != "" {
				s[2]++
			}
		case FragmentPseudoElement:
			s[2]++
		}
	}
	return s
}
