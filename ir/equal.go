package ir

// SameAttrs reports kind-specific equality of two items of the same
// type, children aside. Fenced is presentational and does not
// participate; code block bodies compare through CodeBody so hidden
// lines of a StripHidden block count as absent.
func SameAttrs(l, r *Item) bool {
	switch l.Type {
	case TextType, CodeType, HTMLType:
		return l.Text == r.Text
	case HeadingType:
		return l.Level == r.Level
	case CodeBlockType:
		return sameTags(l.Tags, r.Tags) && CodeBody(l) == CodeBody(r)
	case LinkType, ImageType:
		return l.Target == r.Target && l.Title == r.Title
	case ListType:
		if l.Ordered != r.Ordered {
			return false
		}
		return !l.Ordered || l.Start == r.Start
	}
	return true
}

// Equal reports deep structural equality of two items, ignoring spans
// and notes.
func Equal(l, r *Item) bool {
	if l.Type != r.Type || !SameAttrs(l, r) {
		return false
	}
	if len(l.Children) != len(r.Children) {
		return false
	}
	for i := range l.Children {
		if !Equal(l.Children[i], r.Children[i]) {
			return false
		}
	}
	return true
}

func sameTags(l, r []string) bool {
	if len(l) != len(r) {
		return false
	}
	for i := range l {
		if l[i] != r[i] {
			return false
		}
	}
	return true
}
