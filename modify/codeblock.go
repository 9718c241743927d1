package modify

import (
	"fmt"
	"slices"

	"github.com/mdsync/mdsync/ir"
)

// testCodeBlockTags are fence tags consumed by doc test runners; they
// mark how an example runs, not what language it is, and never appear in
// the readme rendition.
var testCodeBlockTags = []string{
	"ignore",
	"no_run",
	"should_panic",
	"compile_fail",
	"edition2015",
	"edition2018",
}

// RemoveCodeBlockTag strips one exact tag token from every code block's
// language tag list.
func RemoveCodeBlockTag(tag string) Modifier {
	return RemoveCodeBlockTags(tag)
}

// RemoveCodeBlockTags strips each given tag token from every code
// block's language tag list.
func RemoveCodeBlockTags(tags ...string) Modifier {
	note := fmt.Sprintf("RemoveCodeBlockTags(%v)", tags)
	return func(d *ir.Document) (*ir.Document, error) {
		res := mapItems(d, func(it *ir.Item) {
			if it.Type != ir.CodeBlockType || len(it.Tags) == 0 {
				return
			}
			kept := slices.DeleteFunc(slices.Clone(it.Tags), func(t string) bool {
				return slices.Contains(tags, t)
			})
			if len(kept) == len(it.Tags) {
				return
			}
			it.Tags = kept
			it.AddNote(note)
		})
		return res, nil
	}
}

// RemoveTestCodeBlockTags strips the doc test runner tags.
func RemoveTestCodeBlockTags(d *ir.Document) (*ir.Document, error) {
	return RemoveCodeBlockTags(testCodeBlockTags...)(d)
}

// DefaultCodeBlockTag assigns tag to every code block that has no
// language tag of its own.
func DefaultCodeBlockTag(tag string) Modifier {
	note := fmt.Sprintf("DefaultCodeBlockTag(%q)", tag)
	return func(d *ir.Document) (*ir.Document, error) {
		res := mapItems(d, func(it *ir.Item) {
			if it.Type != ir.CodeBlockType || len(it.Tags) != 0 {
				return
			}
			it.Tags = []string{tag}
			it.AddNote(note)
		})
		return res, nil
	}
}

// RemoveHiddenCodeLines marks code blocks tagged with lang so that lines
// following the hidden-line convention compare as absent. The body text
// is left intact; rendering still shows it.
func RemoveHiddenCodeLines(lang string) Modifier {
	note := fmt.Sprintf("RemoveHiddenCodeLines(%q)", lang)
	return func(d *ir.Document) (*ir.Document, error) {
		res := mapItems(d, func(it *ir.Item) {
			if it.Type != ir.CodeBlockType || !slices.Contains(it.Tags, lang) {
				return
			}
			if it.StripHidden {
				return
			}
			it.StripHidden = true
			it.AddNote(note)
		})
		return res, nil
	}
}
