// Package diag turns comparison divergences and modifier failures into
// abstract diagnostic records.
//
// A Diagnostic carries severity, a message, a primary span, secondary
// context spans and an optional note. Rendering is someone else's job:
// the record references sources by identifier and offsets only, so any
// sink able to resolve a span to "source:line:column" plus surrounding
// text can draw it.
package diag

import (
	"errors"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mdsync/mdsync/diff"
	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/modify"
	"github.com/mdsync/mdsync/span"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	}
	return "unknown"
}

// Diagnostic is the abstract record handed to the external renderer.
// It is constructed once per check and not retained.
type Diagnostic struct {
	Severity  Severity
	Message   string
	Primary   span.Span
	Secondary []span.Span
	Note      string
}

// Build turns a divergence into a diagnostic, or nil when the documents
// are synchronized. The primary span is the left side's, the right
// side's span comes first among the secondaries, and ancestor spans
// follow for context.
func Build(div diff.Divergence) *Diagnostic {
	if div.Synced {
		return nil
	}
	d := &Diagnostic{
		Severity: SeverityError,
		Primary:  div.LeftSpan,
	}
	if !div.RightSpan.IsZero() {
		d.Secondary = append(d.Secondary, div.RightSpan)
	}
	for _, anc := range [][]*ir.Item{div.LeftPath, div.RightPath} {
		for i := len(anc) - 1; i >= 0; i-- {
			if s, ok := contextSpan(anc[i]); ok {
				d.Secondary = append(d.Secondary, s)
				break
			}
		}
	}

	left, right := div.Left, div.Right
	if d.Primary.IsZero() && left != nil {
		if s, ok := contextSpan(left); ok {
			d.Primary = s
		}
	}
	switch {
	case left != nil && right != nil:
		d.Message = fmt.Sprintf("%s node `%s` does not match %s node `%s`",
			sideName(div.LeftSpan, "left"), Describe(left),
			sideName(div.RightSpan, "right"), Describe(right))
		d.Note = mismatchNote(left, right)
	case left != nil:
		d.Message = fmt.Sprintf("%s node `%s` does not match any %s node",
			sideName(div.LeftSpan, "left"), Describe(left),
			sideName(div.RightSpan, "right"))
		d.Note = noteTrail(left)
	case right != nil:
		d.Primary = div.RightSpan
		if d.Primary.IsZero() {
			if s, ok := contextSpan(right); ok {
				d.Primary = s
			}
		}
		d.Secondary = nil
		d.Message = fmt.Sprintf("%s node `%s` does not match any %s node",
			sideName(div.RightSpan, "right"), Describe(right),
			sideName(div.LeftSpan, "left"))
		d.Note = noteTrail(right)
	}
	return d
}

// BuildFromError turns a modifier failure anchored in the checked
// sources into a diagnostic. Failures with no source anchor, such as a
// section named by configuration that does not exist, are not findings
// about the documents and yield nil.
func BuildFromError(err error) *Diagnostic {
	var ferr *modify.ForbiddenLinkError
	if !errors.As(err, &ferr) {
		return nil
	}
	return &Diagnostic{
		Severity: SeverityError,
		Message:  err.Error(),
		Primary:  ferr.Span,
	}
}

// contextSpan resolves an item to a source anchor: its own span, or the
// first spanned descendant when the item itself was created by a
// modifier.
func contextSpan(it *ir.Item) (span.Span, bool) {
	sps := ir.SpansOf(it)
	if len(sps) == 0 {
		return span.Span{}, false
	}
	return sps[0], true
}

func sideName(s span.Span, fallback string) string {
	if s.Source != "" {
		return s.Source
	}
	return fallback
}

// Describe names an item's construct kind with a short payload, for
// triage without opening both files.
func Describe(it *ir.Item) string {
	switch it.Type {
	case ir.TextType, ir.CodeType, ir.HTMLType:
		return fmt.Sprintf("%s(%q)", it.Type, excerpt(it.Text, 32))
	case ir.HeadingType:
		return fmt.Sprintf("%s(%d, %q)", it.Type, it.Level, excerpt(it.InlineText(), 32))
	case ir.CodeBlockType:
		return fmt.Sprintf("%s(%s)", it.Type, strings.Join(it.Tags, ","))
	case ir.LinkType, ir.ImageType:
		return fmt.Sprintf("%s(%q)", it.Type, it.Target)
	case ir.ListType:
		if it.Ordered {
			return fmt.Sprintf("%s(ordered, start=%d)", it.Type, it.Start)
		}
		return fmt.Sprintf("%s(unordered)", it.Type)
	}
	return it.Type.String()
}

// mismatchNote pinpoints the differing region of two unequal text runs
// and records any transformation trail.
func mismatchNote(left, right *ir.Item) string {
	var parts []string
	if left.Type == right.Type && isTextual(left.Type) && left.Text != right.Text {
		pos := diffpatch.New().DiffCommonPrefix(left.Text, right.Text)
		start := pos - 32
		if start < 0 {
			start = 0
		}
		end := pos + 32
		parts = append(parts,
			fmt.Sprintf("left  text part: %q", subslice(left.Text, start, end)),
			fmt.Sprintf("right text part: %q", subslice(right.Text, start, end)))
	}
	if t := noteTrail(left); t != "" {
		parts = append(parts, t)
	}
	if t := noteTrail(right); t != "" {
		parts = append(parts, t)
	}
	return strings.Join(parts, "\n")
}

func isTextual(t ir.ItemType) bool {
	return t == ir.TextType || t == ir.CodeType || t == ir.HTMLType
}

func noteTrail(it *ir.Item) string {
	if it.Note == "" {
		return ""
	}
	return fmt.Sprintf("%s was produced by %s", it.Type, it.Note)
}

// subslice cuts text to [start, end) with ellipses, keeping short
// overhangs instead of trading them for a marker.
func subslice(text string, start, end int) string {
	skipBefore := start > 3
	if !skipBefore {
		start = 0
	}
	skipAfter := len(text)-end > 3
	if !skipAfter || end > len(text) {
		end = len(text)
	}
	var sb strings.Builder
	if skipBefore {
		sb.WriteString("...")
	}
	sb.WriteString(text[start:end])
	if skipAfter {
		sb.WriteString("...")
	}
	return sb.String()
}

func excerpt(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n] + "..."
}
