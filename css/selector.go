package css

import (
	"strings"
)

// Builder assembles one compound selector and, optionally, the rendered text
// of a selector it is combined with.
//
// Fragment methods return the receiver so calls can be chained. The first
// violation of ordering or uniqueness rules is latched: Err reports it and all
// later calls leave the builder unchanged. The zero value is an empty builder
// ready for use.
type Builder struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	// present marks unique fragments which were set, empty values included
	present [FragmentPseudoElement + 1]bool
	last    Fragment

	combined   bool
	combinator string
	linked     string

	err error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Element sets element (type) selector.
func (b *Builder) Element(value string) *Builder {
	if b.accept(FragmentElement, value) {
		b.element = value
	}
	return b
}

// ID sets id selector, rendered as "#value".
func (b *Builder) ID(value string) *Builder {
	if b.accept(FragmentID, value) {
		b.id = value
	}
	return b
}

// Class appends class selector, rendered as ".value". May be repeated.
func (b *Builder) Class(value string) *Builder {
	if b.accept(FragmentClass, value) {
		b.classes = append(b.classes, value)
	}
	return b
}

// Attr appends attribute selector, rendered as "[value]". May be repeated.
func (b *Builder) Attr(value string) *Builder {
	if b.accept(FragmentAttribute, value) {
		b.attributes = append(b.attributes, value)
	}
	return b
}

// PseudoClass appends pseudo-class, rendered as ":value". May be repeated.
func (b *Builder) PseudoClass(value string) *Builder {
	if b.accept(FragmentPseudoClass, value) {
		b.pseudoClasses = append(b.pseudoClasses, value)
	}
	return b
}

// PseudoElement sets pseudo-element, rendered as "::value".
func (b *Builder) PseudoElement(value string) *Builder {
	if b.accept(FragmentPseudoElement, value) {
		b.pseudoElement = value
	}
	return b
}

// Combine renders other and links resulting text to the receiver with the
// given combinator. Combinator is not validated. Calling Combine again
// replaces previous combination. If other carries an error it is latched on
// the receiver.
func (b *Builder) Combine(other *Builder, combinator string) *Builder {
	if b.err != nil {
		return b
	}
	if err := other.Err(); err != nil {
		b.err = err
		return b
	}
	b.combined = true
	b.combinator = combinator
	b.linked = other.Stringify()
	return b
}

// Err returns the first error encountered while building, if any.
func (b *Builder) Err() error {
	if b == nil {
		return nil
	}
	return b.err
}

// Stringify renders selector text. It does not modify the builder and may be
// called any number of times.
func (b *Builder) Stringify() string {
	if b == nil {
		return ""
	}

	var sb strings.Builder
	for _, p := range b.Parts() {
		sb.WriteString(p.String())
	}
	// NOTE: trailing space before the combinator is kept, so descendant
	// combinator produces three spaces between compounds.
	sb.WriteByte(' ')
	if b.combined && b.combinator != "" && b.linked != "" {
		sb.WriteString(b.combinator)
		sb.WriteByte(' ')
		sb.WriteString(b.linked)
	}
	return strings.TrimSpace(sb.String())
}

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return b.Stringify()
}

// Parts returns fragments of the compound selector in rendering order.
func (b *Builder) Parts() []Part {
	if b == nil {
		return nil
	}

	parts := make([]Part, 0, 3+len(b.classes)+len(b.attributes)+len(b.pseudoClasses))
	if b.present[FragmentElement] {
		parts = append(parts, Part{Fragment: FragmentElement, Value: b.element})
	}
	if b.present[FragmentID] {
		parts = append(parts, Part{Fragment: FragmentID, Value: b.id})
	}
	for _, v := range b.classes {
		parts = append(parts, Part{Fragment: FragmentClass, Value: v})
	}
	for _, v := range b.attributes {
		parts = append(parts, Part{Fragment: FragmentAttribute, Value: v})
	}
	for _, v := range b.pseudoClasses {
		parts = append(parts, Part{Fragment: FragmentPseudoClass, Value: v})
	}
	if b.present[FragmentPseudoElement] {
		parts = append(parts, Part{Fragment: FragmentPseudoElement, Value: b.pseudoElement})
	}
	return parts
}

// Linked returns combinator and rendered right-hand selector text. ok is
// false when builder was never combined.
func (b *Builder) Linked() (combinator, text string, ok bool) {
	if b == nil || !b.combined {
		return "", "", false
	}
	return b.combinator, b.linked, true
}

// accept checks uniqueness and ordering for the next fragment and records it.
func (b *Builder) accept(f Fragment, value string) bool {
	if b.err != nil {
		return false
	}
	if f.unique() && b.present[f] {
		b.err = &FragmentError{Fragment: f, Value: value, Err: ErrDuplicateFragment}
		return false
	}
	if f < b.last {
		b.err = &FragmentError{Fragment: f, Value: value, Err: ErrOrderViolation}
		return false
	}
	b.present[f] = true
	b.last = f
	return true
}
