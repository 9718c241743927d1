package modify

import (
	"errors"
	"fmt"

	"github.com/mdsync/mdsync/span"
)

var (
	// ErrSectionNotFound reports that RemoveSection matched no heading.
	ErrSectionNotFound = errors.New("section not found")
)

// ForbiddenLinkError reports a link whose target matches a disallowed
// URL prefix, carrying the link's span for diagnostics.
type ForbiddenLinkError struct {
	URL    string
	Prefix string
	Span   span.Span
}

func (e *ForbiddenLinkError) Error() string {
	return fmt.Sprintf("the url %q uses a prohibited prefix %q", e.URL, e.Prefix)
}
