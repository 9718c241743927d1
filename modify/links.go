package modify

import (
	"fmt"
	"strings"

	"github.com/mdsync/mdsync/ir"
)

// RewriteLinks applies fn to every link target. The reason string is
// recorded on rewritten links so a later mismatch diagnostic can explain
// where the target came from.
func RewriteLinks(fn func(target string) string, reason string) Modifier {
	return func(d *ir.Document) (*ir.Document, error) {
		res := mapItems(d, func(it *ir.Item) {
			if it.Type != ir.LinkType {
				return
			}
			mapped := fn(it.Target)
			if mapped == it.Target {
				return
			}
			it.Target = mapped
			it.AddNote(reason)
		})
		return res, nil
	}
}

// DisallowLinkPrefix fails with ForbiddenLinkError if any link target
// starts with prefix. Absolute links into the repository defeat the
// point of relative links working from both rendered locations.
func DisallowLinkPrefix(prefix string) Modifier {
	return func(d *ir.Document) (*ir.Document, error) {
		var ferr *ForbiddenLinkError
		d.Visit(func(it *ir.Item, isPost bool) (bool, error) {
			if isPost || ferr != nil {
				return false, nil
			}
			if it.Type == ir.LinkType && strings.HasPrefix(it.Target, prefix) {
				ferr = &ForbiddenLinkError{URL: it.Target, Prefix: prefix, Span: it.Span}
				return false, nil
			}
			return true, nil
		})
		if ferr != nil {
			return nil, ferr
		}
		return d, nil
	}
}

// AbsoluteLinks rewrites every link whose target is neither absolute nor
// a fragment reference, prefixing it with base.
func AbsoluteLinks(base string) Modifier {
	return RewriteLinks(func(target string) string {
		if IsAbsoluteURL(target) || IsFragment(target) {
			return target
		}
		return base + target
	}, fmt.Sprintf("AbsoluteLinks(%q)", base))
}

// DisallowDocsLinks forbids absolute links into the published docs
// site. The readme should reach the docs through relative links that
// work from both rendered locations.
func DisallowDocsLinks(docsURL string) Modifier {
	return DisallowLinkPrefix(docsURL)
}

// AbsoluteDocsLinks resolves relative links against the published docs
// page, the base a docs front page renders under.
func AbsoluteDocsLinks(docsPrefix string) Modifier {
	return AbsoluteLinks(docsPrefix)
}

// IsAbsoluteURL reports whether url carries a scheme: a leading letter
// followed by letters, digits, '+', '.' or '-' up to a colon.
func IsAbsoluteURL(url string) bool {
	colon := strings.IndexByte(url, ':')
	if colon <= 0 {
		return false
	}
	if !isAlpha(url[0]) {
		return false
	}
	for i := 1; i < colon; i++ {
		ch := url[i]
		if !isAlpha(ch) && !isDigit(ch) && ch != '+' && ch != '.' && ch != '-' {
			return false
		}
	}
	return true
}

// IsFragment reports whether url is a same-document fragment reference.
func IsFragment(url string) bool {
	return strings.HasPrefix(url, "#")
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
