package debug

import (
	"fmt"
	"os"
	"strings"

	"github.com/mdsync/mdsync/ir"
)

// Logf writes a trace line to stderr. Item and Document arguments are
// expanded to an indented tree.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Item:
			args[i] = ItemString(x)
		case *ir.Document:
			args[i] = DocumentString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// DocumentString renders a document as an indented tree, one item per
// line.
func DocumentString(d *ir.Document) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "document %q", d.Source)
	for _, it := range d.Items {
		b.WriteString("\n")
		b.WriteString(ItemString(it))
	}
	return b.String()
}

// ItemString renders an item and its descendants as an indented tree.
func ItemString(it *ir.Item) string {
	b := &strings.Builder{}
	writeItem(b, it, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeItem(b *strings.Builder, it *ir.Item, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(it.Type.String())
	switch it.Type {
	case ir.TextType, ir.CodeType, ir.HTMLType:
		fmt.Fprintf(b, " %q", it.Text)
	case ir.HeadingType:
		fmt.Fprintf(b, " %d", it.Level)
	case ir.CodeBlockType:
		fmt.Fprintf(b, " %v %q", it.Tags, it.Text)
	case ir.LinkType, ir.ImageType:
		fmt.Fprintf(b, " %q", it.Target)
	}
	if it.Note != "" {
		fmt.Fprintf(b, " (%s)", it.Note)
	}
	b.WriteString("\n")
	for _, c := range it.Children {
		writeItem(b, c, depth+1)
	}
}
