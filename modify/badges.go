package modify

import (
	"path"
	"strings"

	"github.com/mdsync/mdsync/ir"
)

// badgeURLPatterns matches the image URLs of popular badge providers.
// Patterns use path.Match syntax with a separator-crossing tail.
var badgeURLPatterns = []string{
	"http://github.com/*/*/workflows/*/badge.svg",
	"https://github.com/*/*/workflows/*/badge.svg",
	"http://github.com/*/*/actions/workflows/*/badge.svg",
	"https://github.com/*/*/actions/workflows/*/badge.svg",
	"http://img.shields.io/*",
	"https://img.shields.io/*",
	"http://badges.gitter.im/*",
	"https://badges.gitter.im/*",
	"http://travis-ci.org/*",
	"https://travis-ci.org/*",
	"http://travis-ci.com/*",
	"https://travis-ci.com/*",
	"http://api.travis-ci.org/*",
	"https://api.travis-ci.org/*",
	"http://api.travis-ci.com/*",
	"https://api.travis-ci.com/*",
	"http://ci.appveyor.com/api/projects/status/*",
	"https://ci.appveyor.com/api/projects/status/*",
	"http://circleci.com/gh/*",
	"https://circleci.com/gh/*",
	"http://codecov.io/gh/*",
	"https://codecov.io/gh/*",
	"http://coveralls.io/repos/*",
	"https://coveralls.io/repos/*",
	"http://goreportcard.com/badge/*",
	"https://goreportcard.com/badge/*",
	"http://pkg.go.dev/badge/*",
	"https://pkg.go.dev/badge/*",
}

// MatchesBadgeURL reports whether url looks like a badge image URL.
// Query strings do not participate in the match.
func MatchesBadgeURL(url string) bool {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	for _, pattern := range badgeURLPatterns {
		if matchURL(pattern, url) {
			return true
		}
	}
	return false
}

// matchURL matches like path.Match but lets a trailing "*" cross path
// separators, the way badge URL globs are written.
func matchURL(pattern, url string) bool {
	if ok, err := path.Match(pattern, url); err == nil && ok {
		return true
	}
	n := len(pattern)
	if n > 0 && pattern[n-1] == '*' {
		prefix := pattern[:n-1]
		if i := lastMeta(prefix); i < 0 && len(url) >= len(prefix) && url[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func lastMeta(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '*', '?', '[', '\\':
			return i
		}
	}
	return -1
}

// RemoveBadgesParagraph drops the first top-level paragraph whose inline
// content is images (possibly wrapped in links) only, when at least one
// image URL belongs to a badge provider. Badge rows often carry a stray
// logo image alongside the badges; one recognized badge marks the whole
// paragraph. Readmes open with such a paragraph; extracted docs never
// do. No-op when absent.
func RemoveBadgesParagraph(d *ir.Document) (*ir.Document, error) {
	return RemoveImagesOnlyParagraph(func(urls []string) bool {
		for _, u := range urls {
			if MatchesBadgeURL(u) {
				return true
			}
		}
		return false
	})(d)
}

// RemoveImagesOnlyParagraph drops the first top-level paragraph that
// contains only images and image-links, if predicate accepts the
// collected image URLs. No-op when no such paragraph exists.
func RemoveImagesOnlyParagraph(predicate func(imageURLs []string) bool) Modifier {
	return func(d *ir.Document) (*ir.Document, error) {
		res := d.Clone()
		for i, it := range res.Items {
			if it.Type != ir.ParagraphType {
				continue
			}
			urls, ok := imagesOnly(it)
			if ok && predicate(urls) {
				res.Items = append(res.Items[:i], res.Items[i+1:]...)
			}
			break
		}
		return ir.NormalizeDocument(res), nil
	}
}

// imagesOnly reports whether a paragraph holds only images, links
// wrapping images, and line breaks, and collects the image URLs.
func imagesOnly(p *ir.Item) ([]string, bool) {
	var urls []string
	if len(p.Children) == 0 {
		return nil, false
	}
	for _, c := range p.Children {
		switch c.Type {
		case ir.ImageType:
			urls = append(urls, c.Target)
		case ir.LinkType:
			for _, lc := range c.Children {
				switch lc.Type {
				case ir.ImageType:
					urls = append(urls, lc.Target)
				case ir.SoftBreakType, ir.HardBreakType:
				default:
					return nil, false
				}
			}
		case ir.SoftBreakType, ir.HardBreakType:
		default:
			return nil, false
		}
	}
	return urls, true
}
