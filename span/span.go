// Package span provides source position bookkeeping for markdown documents.
//
// A Span references a byte range in an original text source by source
// identifier and offsets; it never holds the text itself. The Doc type
// indexes a source text's newlines so offsets can be resolved to line and
// column on demand.
package span

import (
	"fmt"
	"sort"
	"strconv"
)

// Span is a reference into an original text source.
type Span struct {
	Source string
	Start  int
	End    int
}

// IsZero reports whether s references nothing.
func (s Span) IsZero() bool {
	return s.Source == "" && s.Start == 0 && s.End == 0
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]", s.Source, s.Start, s.End)
}

// Union returns the smallest span covering both s and o. Spans from
// different sources do not combine; s wins.
func (s Span) Union(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() || o.Source != s.Source {
		return s
	}
	res := s
	if o.Start < res.Start {
		res.Start = o.Start
	}
	if o.End > res.End {
		res.End = o.End
	}
	return res
}

// Doc indexes a source text for offset to line/column resolution.
type Doc struct {
	name string
	text []byte
	nl   []int
}

// NewDoc builds a line index over text under the given source name.
func NewDoc(name string, text []byte) *Doc {
	d := &Doc{name: name, text: text}
	for i, b := range text {
		if b == '\n' {
			d.nl = append(d.nl, i)
		}
	}
	return d
}

// Name returns the source identifier.
func (d *Doc) Name() string { return d.name }

// Text returns the indexed source text.
func (d *Doc) Text() []byte { return d.text }

// LineCol resolves a byte offset to 0-based line and column.
func (d *Doc) LineCol(off int) (int, int) {
	n := len(d.nl)
	li := sort.Search(n, func(i int) bool {
		return d.nl[i] >= off
	})
	if li == 0 {
		return 0, off
	}
	return li, off - d.nl[li-1] - 1
}

// Line returns the text of the 0-based line i without its newline.
func (d *Doc) Line(i int) []byte {
	start := 0
	if i > 0 {
		if i > len(d.nl) {
			return nil
		}
		start = d.nl[i-1] + 1
	}
	end := len(d.text)
	if i < len(d.nl) {
		end = d.nl[i]
	}
	if start > end {
		return nil
	}
	return d.text[start:end]
}

// Span constructs a span in this document.
func (d *Doc) Span(start, end int) Span {
	return Span{Source: d.name, Start: start, End: end}
}

// Context returns a quoted excerpt around the given offset, for error
// messages that have no renderer at hand.
func (d *Doc) Context(off int) string {
	lo := max(0, off-10)
	hi := min(off+10, len(d.text))
	sample := strconv.Quote(string(d.text[lo:hi]))
	sample = sample[1 : len(sample)-1]
	line, col := d.LineCol(off)
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, off, line, col)
}

// Docs is a registry of indexed sources keyed by source identifier.
// The diagnostic renderer uses it to resolve spans back to lines of text.
type Docs struct {
	m map[string]*Doc
}

// NewDocs returns an empty registry.
func NewDocs() *Docs {
	return &Docs{m: map[string]*Doc{}}
}

// Add indexes text under name and returns the Doc. Adding the same name
// twice replaces the previous entry.
func (ds *Docs) Add(name string, text []byte) *Doc {
	d := NewDoc(name, text)
	ds.m[name] = d
	return d
}

// Get returns the Doc for name, or nil if it was never added.
func (ds *Docs) Get(name string) *Doc {
	return ds.m[name]
}
