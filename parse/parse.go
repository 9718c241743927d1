package parse

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/span"
)

type options struct {
	remap *span.Remap
}

type Option func(*options)

// WithRemap remaps parsed byte offsets to original source locations.
// Extracted doc-comment text supplies one so diagnostics anchor in the
// file the text came from.
func WithRemap(r *span.Remap) Option {
	return func(o *options) {
		o.remap = r
	}
}

// Parse tokenizes src with goldmark and assembles the event stream into
// an ir.Document named by source. The returned document is normalized.
func Parse(src []byte, source string, opts ...Option) (*ir.Document, error) {
	pOpts := &options{}
	for _, f := range opts {
		f(pOpts)
	}
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	root := md.Parser().Parse(gtext.NewReader(src))

	c := &converter{src: src, source: source, remap: pOpts.remap}
	if err := ast.Walk(root, c.walk); err != nil {
		return nil, err
	}
	if len(c.stack) != 0 {
		return nil, fmt.Errorf("%w: %d unclosed containers", ErrMalformed, len(c.stack))
	}
	return &ir.Document{Source: source, Items: ir.Normalize(c.top)}, nil
}

// converter maintains the stack of open containers during the event
// walk. Leaf events append to the open container (or the top level);
// container start events push, end events pop and close the span.
type converter struct {
	src    []byte
	source string
	remap  *span.Remap

	stack []openItem
	top   []*ir.Item
}

type openItem struct {
	node ast.Node
	item *ir.Item
}

func (c *converter) spanOf(start, end int) span.Span {
	if c.remap != nil {
		if s, ok := c.remap.Map(start, end); ok {
			return s
		}
	}
	return span.Span{Source: c.source, Start: start, End: end}
}

func (c *converter) push(n ast.Node, it *ir.Item) {
	c.stack = append(c.stack, openItem{node: n, item: it})
}

func (c *converter) pop(n ast.Node) error {
	if len(c.stack) == 0 {
		return fmt.Errorf("%w: close of %s with no open container", ErrMalformed, n.Kind())
	}
	open := c.stack[len(c.stack)-1]
	if open.node != n {
		return fmt.Errorf("%w: close of %s while %s is open",
			ErrMalformed, n.Kind(), open.node.Kind())
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.append(open.item)
	return nil
}

func (c *converter) append(it *ir.Item) {
	if len(c.stack) == 0 {
		c.top = append(c.top, it)
		return
	}
	p := c.stack[len(c.stack)-1].item
	p.Children = append(p.Children, it)
	p.Span = p.Span.Union(it.Span)
}

func (c *converter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return c.exit(node)
	}
	switch n := node.(type) {
	case *ast.Document:
		return ast.WalkContinue, nil
	case *ast.Heading:
		c.push(n, &ir.Item{Type: ir.HeadingType, Level: n.Level, Span: c.linesSpan(n)})
		return ast.WalkContinue, nil
	case *ast.Paragraph:
		c.push(n, &ir.Item{Type: ir.ParagraphType, Span: c.linesSpan(n)})
		return ast.WalkContinue, nil
	case *ast.TextBlock:
		// tight list items hold TextBlocks where loose ones hold
		// Paragraphs; the distinction is presentational
		c.push(n, &ir.Item{Type: ir.ParagraphType, Span: c.linesSpan(n)})
		return ast.WalkContinue, nil
	case *ast.Blockquote:
		c.push(n, &ir.Item{Type: ir.BlockQuoteType, Span: c.linesSpan(n)})
		return ast.WalkContinue, nil
	case *ast.List:
		c.push(n, &ir.Item{Type: ir.ListType, Ordered: n.IsOrdered(), Start: n.Start})
		return ast.WalkContinue, nil
	case *ast.ListItem:
		c.push(n, &ir.Item{Type: ir.ListItemType})
		return ast.WalkContinue, nil
	case *ast.Emphasis:
		t := ir.EmphasisType
		if n.Level >= 2 {
			t = ir.StrongType
		}
		c.push(n, &ir.Item{Type: t})
		return ast.WalkContinue, nil
	case *east.Strikethrough:
		c.push(n, &ir.Item{Type: ir.StrikethroughType})
		return ast.WalkContinue, nil
	case *ast.Link:
		c.push(n, &ir.Item{
			Type:   ir.LinkType,
			Target: string(n.Destination),
			Title:  string(n.Title),
		})
		return ast.WalkContinue, nil
	case *ast.Image:
		c.push(n, &ir.Item{
			Type:   ir.ImageType,
			Target: string(n.Destination),
			Title:  string(n.Title),
		})
		return ast.WalkContinue, nil
	case *ast.AutoLink:
		url := string(n.URL(c.src))
		c.append(&ir.Item{
			Type:   ir.LinkType,
			Target: url,
			Children: []*ir.Item{
				{Type: ir.TextType, Text: string(n.Label(c.src))},
			},
		})
		return ast.WalkSkipChildren, nil
	case *ast.Text:
		seg := n.Segment
		c.append(&ir.Item{
			Type: ir.TextType,
			Text: string(seg.Value(c.src)),
			Span: c.spanOf(seg.Start, seg.Stop),
		})
		switch {
		case n.HardLineBreak():
			c.append(&ir.Item{Type: ir.HardBreakType, Span: c.spanOf(seg.Stop, seg.Stop)})
		case n.SoftLineBreak():
			c.append(&ir.Item{Type: ir.SoftBreakType, Span: c.spanOf(seg.Stop, seg.Stop)})
		}
		return ast.WalkSkipChildren, nil
	case *ast.String:
		c.append(&ir.Item{Type: ir.TextType, Text: string(n.Value)})
		return ast.WalkSkipChildren, nil
	case *ast.CodeSpan:
		c.append(c.codeSpan(n))
		return ast.WalkSkipChildren, nil
	case *ast.FencedCodeBlock:
		c.append(c.fencedCodeBlock(n))
		return ast.WalkSkipChildren, nil
	case *ast.CodeBlock:
		body, sp := c.linesText(n)
		c.append(&ir.Item{Type: ir.CodeBlockType, Text: body, Span: sp})
		return ast.WalkSkipChildren, nil
	case *ast.HTMLBlock:
		body, sp := c.linesText(n)
		if n.HasClosure() {
			cl := n.ClosureLine
			body += string(cl.Value(c.src))
			sp = sp.Union(c.spanOf(cl.Start, cl.Stop))
		}
		c.append(&ir.Item{Type: ir.HTMLType, Text: body, Span: sp})
		return ast.WalkSkipChildren, nil
	case *ast.RawHTML:
		var sb strings.Builder
		var sp span.Span
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.src))
			sp = sp.Union(c.spanOf(seg.Start, seg.Stop))
		}
		c.append(&ir.Item{Type: ir.HTMLType, Text: sb.String(), Span: sp})
		return ast.WalkSkipChildren, nil
	case *ast.ThematicBreak:
		c.append(&ir.Item{Type: ir.RuleType, Span: c.linesSpan(n)})
		return ast.WalkSkipChildren, nil
	default:
		return ast.WalkStop, fmt.Errorf("%w: %s", ErrUnsupported, node.Kind())
	}
}

func (c *converter) exit(node ast.Node) (ast.WalkStatus, error) {
	switch node.(type) {
	case *ast.Heading, *ast.Paragraph, *ast.TextBlock, *ast.Blockquote,
		*ast.List, *ast.ListItem, *ast.Emphasis, *east.Strikethrough,
		*ast.Link, *ast.Image:
		if err := c.pop(node); err != nil {
			return ast.WalkStop, err
		}
	}
	return ast.WalkContinue, nil
}

func (c *converter) codeSpan(n *ast.CodeSpan) *ir.Item {
	var sb strings.Builder
	var sp span.Span
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			seg := t.Segment
			sb.Write(seg.Value(c.src))
			sp = sp.Union(c.spanOf(seg.Start, seg.Stop))
		case *ast.String:
			sb.Write(t.Value)
		}
	}
	return &ir.Item{Type: ir.CodeType, Text: sb.String(), Span: sp}
}

func (c *converter) fencedCodeBlock(n *ast.FencedCodeBlock) *ir.Item {
	it := &ir.Item{Type: ir.CodeBlockType, Fenced: true}
	if n.Info != nil {
		seg := n.Info.Segment
		info := string(seg.Value(c.src))
		if fields := strings.Fields(info); len(fields) > 0 {
			it.Tags = strings.Split(fields[0], ",")
		}
		it.Span = c.spanOf(seg.Start, seg.Stop)
	}
	body, sp := c.linesText(n)
	it.Text = body
	it.Span = it.Span.Union(sp)
	return it
}

// linesText concatenates a block node's line segments and computes the
// covering span.
func (c *converter) linesText(n ast.Node) (string, span.Span) {
	var sb strings.Builder
	var sp span.Span
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(c.src))
		sp = sp.Union(c.spanOf(seg.Start, seg.Stop))
	}
	return sb.String(), sp
}

func (c *converter) linesSpan(n ast.Node) span.Span {
	var sp span.Span
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sp = sp.Union(c.spanOf(seg.Start, seg.Stop))
	}
	return sp
}
