package recipe

import (
	"errors"
	"fmt"
	"strings"

	"selb/css"
)

var (
	ErrEmptyChain         = errors.New("empty selector chain")
	ErrBadToken           = errors.New("unknown fragment kind")
	ErrDanglingCombinator = errors.New("combinator without selector on both sides")
)

// descendantWord stands for the space combinator which is awkward to pass on
// command line or in YAML lists.
const descendantWord = "descendant"

type fragmentCalls struct {
	start func(string) *css.Builder
	next  func(*css.Builder, string) *css.Builder
}

var fragments = map[string]fragmentCalls{
	"element":        {css.Element, (*css.Builder).Element},
	"el":             {css.Element, (*css.Builder).Element},
	"id":             {css.ID, (*css.Builder).ID},
	"class":          {css.Class, (*css.Builder).Class},
	"cls":            {css.Class, (*css.Builder).Class},
	"attr":           {css.Attr, (*css.Builder).Attr},
	"pseudo-class":   {css.PseudoClass, (*css.Builder).PseudoClass},
	"pc":             {css.PseudoClass, (*css.Builder).PseudoClass},
	"pseudo-element": {css.PseudoElement, (*css.Builder).PseudoElement},
	"pe":             {css.PseudoElement, (*css.Builder).PseudoElement},
}

// Chain is a parsed token list: compound selectors left to right with
// combinators between them, and the resulting combined selector.
type Chain struct {
	Selector    *css.Builder
	Compounds   []*css.Builder
	Combinators []string
}

// ParseChain builds selector from a list of tokens. Token "kind=value" appends
// a fragment to the current compound selector, any other token is a
// combinator which starts the next one. Value is everything after the first
// "=", so attr=href$=".png" works as expected.
//
// Compound selectors are combined right to left, so
//
//	el=div + el=table ~ el=tr
//
// is div combined with (table combined with tr).
func ParseChain(tokens []string) (*css.Builder, error) {
	ch, err := Compile(tokens)
	if err != nil {
		return nil, err
	}
	return ch.Selector, nil
}

// Compile parses tokens the same way ParseChain does and keeps every
// compound selector of the chain.
func Compile(tokens []string) (*Chain, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyChain
	}

	ch := &Chain{}
	var cur *css.Builder
	for i, tok := range tokens {
		kind, value, isFragment := strings.Cut(tok, "=")
		if !isFragment {
			if tok == "" {
				return nil, fmt.Errorf("token %d: empty: %w", i+1, ErrBadToken)
			}
			if cur == nil {
				return nil, fmt.Errorf("token %d %q: %w", i+1, tok, ErrDanglingCombinator)
			}
			if tok == descendantWord {
				tok = css.Descendant
			}
			ch.Compounds = append(ch.Compounds, cur)
			ch.Combinators = append(ch.Combinators, tok)
			cur = nil
			continue
		}

		calls, ok := fragments[strings.ToLower(strings.TrimSpace(kind))]
		if !ok {
			return nil, fmt.Errorf("token %d %q: %w", i+1, tok, ErrBadToken)
		}
		if cur == nil {
			cur = calls.start(value)
		} else {
			calls.next(cur, value)
		}
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i+1, tok, err)
		}
	}

	if cur == nil {
		return nil, fmt.Errorf("token %d %q: %w", len(tokens), tokens[len(tokens)-1], ErrDanglingCombinator)
	}
	ch.Compounds = append(ch.Compounds, cur)

	ch.Selector = cur
	for i := len(ch.Combinators) - 1; i >= 0; i-- {
		ch.Selector = css.Combine(ch.Compounds[i], ch.Combinators[i], ch.Selector)
	}
	return ch, nil
}

// Specificity sums specificity of all compound selectors in the chain.
func (ch *Chain) Specificity() css.Specificity {
	var s css.Specificity
	for _, c := range ch.Compounds {
		s = s.Add(c.Specificity())
	}
	return s
}
