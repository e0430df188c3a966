package render

import (
	"selb/recipe"
	"selb/utils/debug"
)

// explain dumps compiled chain: combined selector first, then every compound
// with its parts and the combinator linking it to the next one.
func explain(ch *recipe.Chain) string {
	tw := debug.NewTreeWriter()

	tw.TextBlock(0, "selector", ch.Selector.Stringify())
	tw.Line(0, "specificity: %s", ch.Specificity())

	for i, c := range ch.Compounds {
		tw.Line(0, "compound %d (specificity %s)", i+1, c.Specificity())
		for _, p := range c.Parts() {
			tw.TextBlock(1, p.Fragment.String(), p.Value)
		}
		if i < len(ch.Combinators) {
			tw.TextBlock(1, "combinator", ch.Combinators[i])
		}
	}
	return tw.String()
}
