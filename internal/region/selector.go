package region

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptySelector is returned for an empty selector.
var ErrEmptySelector = errors.New("region: empty selector")

// Selector matches part names, either exactly or with a regular expression.
type Selector struct {
	raw string
	rx  *regexp.Regexp
}

// ParseSelector parses a part name or a /regexp/ literal.
//
// The regular expression must match at the start of the name,
// but it does not need to match the whole name.
func ParseSelector(s string) (Selector, error) {
	if s == "" {
		return Selector{}, ErrEmptySelector
	}
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		rx, err := regexp.Compile("^(?:" + s[1:len(s)-1] + ")")
		if err != nil {
			return Selector{}, fmt.Errorf("region: invalid pattern %s: %w", s, err)
		}
		return Selector{raw: s, rx: rx}, nil
	}
	return Selector{raw: s}, nil
}

// MustParseSelector is like ParseSelector, but panics on error.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// Match checks whether name is selected.
func (sel Selector) Match(name string) bool {
	if sel.rx != nil {
		return sel.rx.MatchString(name)
	}
	return sel.raw == name
}

// IsPattern returns true for regular expression selectors.
func (sel Selector) IsPattern() bool { return sel.rx != nil }

func (sel Selector) String() string { return sel.raw }

// Filter keeps the parts matching any of the selectors, in order.
// Without selectors all parts are kept.
func Filter(parts []Part, selectors []Selector) []Part {
	if len(selectors) == 0 {
		return parts
	}

	var selected []Part
	for _, p := range parts {
		for _, sel := range selectors {
			if sel.Match(p.Name) {
				selected = append(selected, p)
				break
			}
		}
	}
	return selected
}
