package css

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   string            // Rendered selector text
	Properties map[string]string // Property name -> value
}

// GetProperty returns the value for a property, or empty string if not found.
func (r Rule) GetProperty(name string) (string, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet is an ordered list of rules ready to be written out.
type Stylesheet struct {
	Header string // Written as leading comment when not empty
	Indent string // Property indentation, two spaces when empty
	Rules  []Rule
}

// Add renders selector and appends a rule. Properties are copied.
func (s *Stylesheet) Add(sel *Builder, props map[string]string) {
	cp := make(map[string]string, len(props))
	for k, v := range props {
		cp[k] = v
	}
	s.Rules = append(s.Rules, Rule{Selector: sel.Stringify(), Properties: cp})
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// SortNatural orders rules by selector text using natural ordering, so
// "h2" goes before "h10". Rules with equal selectors keep their order.
func (s *Stylesheet) SortNatural() {
	sort.SliceStable(s.Rules, func(i, j int) bool {
		return natural.Less(s.Rules[i].Selector, s.Rules[j].Selector)
	})
}

// WriteTo writes the stylesheet to w, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64

	indent := s.Indent
	if indent == "" {
		indent = "  "
	}

	if s.Header != "" {
		n, err := fmt.Fprintf(w, "/* %s */\n", escapeComment(s.Header))
		total += int64(n)
		if err != nil {
			return total, err
		}
		if len(s.Rules) > 0 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i], indent)
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties, indent)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]string, indent string) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "%s%s: %s;\n", indent, name, props[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// escapeComment keeps text from terminating the comment early.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
