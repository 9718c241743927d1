package ir

import (
	"strings"

	"github.com/mdsync/mdsync/span"
)

type ItemType int

const (
	TextType ItemType = iota
	CodeType
	HTMLType
	ParagraphType
	HeadingType
	CodeBlockType
	BlockQuoteType
	ListType
	ListItemType
	LinkType
	ImageType
	EmphasisType
	StrongType
	StrikethroughType
	SoftBreakType
	HardBreakType
	RuleType
)

// MaxHeadingLevel is the deepest heading level markdown can express.
const MaxHeadingLevel = 6

func (t ItemType) String() string {
	return map[ItemType]string{
		TextType:          "Text",
		CodeType:          "Code",
		HTMLType:          "Html",
		ParagraphType:     "Paragraph",
		HeadingType:       "Heading",
		CodeBlockType:     "CodeBlock",
		BlockQuoteType:    "BlockQuote",
		ListType:          "List",
		ListItemType:      "ListItem",
		LinkType:          "Link",
		ImageType:         "Image",
		EmphasisType:      "Emphasis",
		StrongType:        "Strong",
		StrikethroughType: "Strikethrough",
		SoftBreakType:     "SoftBreak",
		HardBreakType:     "HardBreak",
		RuleType:          "Rule",
	}[t]
}

// Item is one markdown construct with an attached source span.
type Item struct {
	Type ItemType
	Span span.Span

	// Text holds string content for TextType, CodeType and HTMLType,
	// and the body for CodeBlockType.
	Text string

	// Level is the heading level, 1 through MaxHeadingLevel.
	Level int

	// Tags is the fenced code block language tag list.
	Tags []string
	// Fenced distinguishes fenced from indented code blocks. It does
	// not participate in comparison; both render the same content.
	Fenced bool
	// StripHidden marks a code block whose hidden lines are compared
	// as absent while the body text stays intact for rendering.
	StripHidden bool

	// Target and Title belong to LinkType and ImageType.
	Target string
	Title  string

	// Ordered and Start belong to ListType.
	Ordered bool
	Start   int

	// Note records the transformation trail for diagnostics.
	Note string

	Children []*Item
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	res := &Item{}
	it.CloneTo(res)
	return res
}

// CloneTo deep-copies it into dst and returns dst.
func (it *Item) CloneTo(dst *Item) *Item {
	*dst = *it
	if it.Tags != nil {
		dst.Tags = append([]string(nil), it.Tags...)
	}
	if it.Children != nil {
		dst.Children = make([]*Item, len(it.Children))
		for i, c := range it.Children {
			dst.Children[i] = c.Clone()
		}
	}
	return dst
}

// Visit walks the item and its descendants depth-first. f is called with
// isPost false before descending and true after; returning dive=false
// from the pre call skips the children.
func (it *Item) Visit(f func(it *Item, isPost bool) (bool, error)) error {
	dive, err := f(it, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range it.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(it, true)
	return err
}

// AddNote appends a transformation note to the item's trail.
func (it *Item) AddNote(note string) {
	if it.Note == "" {
		it.Note = note
		return
	}
	it.Note += " : " + note
}

// InlineText flattens the textual content of the item and its
// descendants, used for heading text matching and diagnostic excerpts.
func (it *Item) InlineText() string {
	var sb strings.Builder
	it.Visit(func(c *Item, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch c.Type {
		case TextType, CodeType:
			sb.WriteString(c.Text)
		case SoftBreakType, HardBreakType:
			sb.WriteString("\n")
		}
		return true, nil
	})
	return sb.String()
}

// Document is an ordered sequence of top-level items plus provenance.
type Document struct {
	Source string
	Items  []*Item
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	res := &Document{Source: d.Source}
	if d.Items != nil {
		res.Items = make([]*Item, len(d.Items))
		for i, it := range d.Items {
			res.Items[i] = it.Clone()
		}
	}
	return res
}

// Visit walks all top-level items and their descendants.
func (d *Document) Visit(f func(it *Item, isPost bool) (bool, error)) error {
	for _, it := range d.Items {
		if err := it.Visit(f); err != nil {
			return err
		}
	}
	return nil
}
