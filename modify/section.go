package modify

import (
	"fmt"

	"github.com/mdsync/mdsync/ir"
)

// RemoveSection drops the heading with the given text and level plus all
// following top-level items up to, but not including, the next heading
// of level <= the removed one. Fails with ErrSectionNotFound when no
// such heading exists.
func RemoveSection(heading string, level int) Modifier {
	return func(d *ir.Document) (*ir.Document, error) {
		res := d.Clone()
		start := -1
		for i, it := range res.Items {
			if it.Type == ir.HeadingType && it.Level == level && it.InlineText() == heading {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("%w: heading %q level %d", ErrSectionNotFound, heading, level)
		}
		end := len(res.Items)
		for i := start + 1; i < len(res.Items); i++ {
			it := res.Items[i]
			if it.Type == ir.HeadingType && it.Level <= level {
				end = i
				break
			}
		}
		res.Items = append(res.Items[:start], res.Items[end:]...)
		return ir.NormalizeDocument(res), nil
	}
}

// RemoveDocumentationSection removes the level-2 "Documentation" section
// readmes carry and extracted docs do not.
func RemoveDocumentationSection(d *ir.Document) (*ir.Document, error) {
	return RemoveSection("Documentation", 2)(d)
}

// IncrementHeadingLevels adds one to every heading's level, saturating
// at the markdown maximum. Doc front pages generate their own title, so
// extracted docs sit one level above the readme's sections.
func IncrementHeadingLevels(d *ir.Document) (*ir.Document, error) {
	res := mapItems(d, func(it *ir.Item) {
		if it.Type != ir.HeadingType {
			return
		}
		if it.Level < ir.MaxHeadingLevel {
			it.Level++
		}
		it.AddNote("IncrementHeadingLevels")
	})
	return res, nil
}

// AddTitle prepends a level-1 heading with the given text, useful after
// heading levels were incremented.
func AddTitle(text string) Modifier {
	return func(d *ir.Document) (*ir.Document, error) {
		res := d.Clone()
		title := &ir.Item{
			Type:  ir.HeadingType,
			Level: 1,
			Note:  "AddTitle",
			Children: []*ir.Item{
				{Type: ir.TextType, Text: text, Note: "AddTitle"},
			},
		}
		res.Items = append([]*ir.Item{title}, res.Items...)
		return ir.NormalizeDocument(res), nil
	}
}
