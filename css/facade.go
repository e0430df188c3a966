package css

// Functions below start a new selector from any fragment kind.

// Element returns a new builder started with element selector.
func Element(value string) *Builder {
	return NewBuilder().Element(value)
}

// ID returns a new builder started with id selector.
func ID(value string) *Builder {
	return NewBuilder().ID(value)
}

// Class returns a new builder started with class selector.
func Class(value string) *Builder {
	return NewBuilder().Class(value)
}

// Attr returns a new builder started with attribute selector.
func Attr(value string) *Builder {
	return NewBuilder().Attr(value)
}

// PseudoClass returns a new builder started with pseudo-class.
func PseudoClass(value string) *Builder {
	return NewBuilder().PseudoClass(value)
}

// PseudoElement returns a new builder started with pseudo-element.
func PseudoElement(value string) *Builder {
	return NewBuilder().PseudoElement(value)
}

// Combine links right to left with combinator placed between them and
// returns left. It is the same as left.Combine(right, combinator).
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return left.Combine(right, combinator)
}
