package recipe

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selb/css"
)

// Options controls stylesheet generation.
type Options struct {
	Header          string
	Indent          string
	SortRules       bool
	LintIdentifiers bool
}

// Build produces stylesheet from recipe. Rules which fail to build are left
// out and reported together in returned error, so both results may be
// non-nil.
func (r *Recipe) Build(log *zap.Logger, opts Options) (*css.Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("recipe").With(zap.String("recipe", r.Name))

	sheet := &css.Stylesheet{Header: opts.Header, Indent: opts.Indent}

	var errs error
	for i, rule := range r.Rules {
		ch, err := Compile(rule.Selector)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("recipe %q rule %d: %w", r.Name, i+1, err))
			log.Debug("Rule skipped", zap.Int("rule", i+1), zap.Strings("selector", rule.Selector), zap.Error(err))
			continue
		}

		if opts.LintIdentifiers {
			for _, c := range ch.Compounds {
				for _, p := range c.NonIdentifiers() {
					log.Warn("Selector part is not a CSS identifier",
						zap.Int("rule", i+1), zap.Stringer("fragment", p.Fragment), zap.String("value", p.Value))
				}
			}
		}

		sheet.Add(ch.Selector, rule.Declarations)
		log.Debug("Rule added", zap.Int("rule", i+1), zap.Stringer("selector", ch.Selector), zap.Stringer("specificity", ch.Selector.Specificity()))
	}

	if opts.SortRules {
		sheet.SortNatural()
	}
	return sheet, errs
}
