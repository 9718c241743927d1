package ir

import (
	"strings"

	"github.com/mdsync/mdsync/span"
)

// SpansOf flattens the item's own span plus all descendant spans,
// skipping zero spans of created content. The diagnostic builder uses
// this for multi-point context.
func SpansOf(it *Item) []span.Span {
	var res []span.Span
	it.Visit(func(c *Item, isPost bool) (bool, error) {
		if !isPost && !c.Span.IsZero() {
			res = append(res, c.Span)
		}
		return true, nil
	})
	return res
}

// CodeBody returns the code block body used for comparison: the raw body,
// or the body with hidden lines removed when StripHidden is set. Hidden
// lines follow the doctest convention, a line that is exactly "#" or
// starts with "# ".
func CodeBody(it *Item) string {
	if it.Type != CodeBlockType || !it.StripHidden {
		return it.Text
	}
	return StripHiddenLines(it.Text)
}

// StripHiddenLines drops hidden-marker lines from a code block body.
func StripHiddenLines(body string) string {
	lines := strings.Split(body, "\n")
	res := lines[:0:0]
	for _, line := range lines {
		if line == "#" || strings.HasPrefix(line, "# ") {
			continue
		}
		res = append(res, line)
	}
	return strings.Join(res, "\n")
}
