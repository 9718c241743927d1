package ir

// Normalize merges adjacent text items and drops zero-length ones,
// recursively through nested inline content. Parsers split text runs at
// incidental boundaries (per-line doc comment events, character entity
// references), so comparison requires this invariant to hold on both
// sides. Normalize is idempotent.
func Normalize(items []*Item) []*Item {
	res := make([]*Item, 0, len(items))
	var run *Item
	flush := func() {
		if run != nil {
			res = append(res, run)
			run = nil
		}
	}
	for _, it := range items {
		if it.Type == TextType {
			if it.Text == "" {
				continue
			}
			if run == nil {
				run = it
				continue
			}
			merged := run.Clone()
			merged.Text += it.Text
			merged.Span = run.Span.Union(it.Span)
			if it.Note != "" && it.Note != merged.Note {
				merged.AddNote(it.Note)
			}
			run = merged
			continue
		}
		flush()
		if len(it.Children) > 0 {
			kids := Normalize(it.Children)
			if len(kids) != len(it.Children) || changed(kids, it.Children) {
				it = it.Clone()
				it.Children = kids
			}
		}
		res = append(res, it)
	}
	flush()
	return res
}

func changed(a, b []*Item) bool {
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// NormalizeDocument returns d with the text adjacency invariant
// re-established. The input document is not mutated.
func NormalizeDocument(d *Document) *Document {
	return &Document{Source: d.Source, Items: Normalize(d.Items)}
}
