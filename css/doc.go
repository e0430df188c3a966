// Package css builds CSS selector text and writes simple stylesheets.
//
// # Selectors
//
// A Builder accumulates one compound selector. Parts must be appended in
// canonical order and element, id and pseudo-element may appear only once:
//
//	element < id < class < attribute < pseudo-class < pseudo-element
//
// Classes, attributes and pseudo-classes may repeat. Violations are latched
// on the builder and reported by Err (ErrDuplicateFragment,
// ErrOrderViolation).
//
// Package level functions start a selector from any part:
//
//	sel := css.Combine(
//		css.Element("div").ID("main").Class("container"),
//		css.NextSibling,
//		css.Element("table").ID("data"),
//	)
//	if err := sel.Err(); err != nil {
//		return err
//	}
//	fmt.Println(sel) // div#main.container + table#data
//
// Combination stores rendered text of the right-hand selector, later changes
// to it are not reflected. Combinators are passed through verbatim.
//
// # Stylesheets
//
// Stylesheet collects rendered selectors with their declarations and writes
// them in order with properties sorted by name.
package css
