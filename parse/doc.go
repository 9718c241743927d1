// Package parse builds IR documents from raw markdown text.
//
// # Usage
//
//	doc, err := parse.Parse(text, "README.md")
//	if err != nil {
//	    return err
//	}
//
//	// Docs extracted from source comments carry an offset remap so
//	// spans point at the original file:
//	doc, err := parse.Parse(docsText, "doc.go", parse.WithRemap(remap))
//
// Tokenization is delegated to the goldmark engine; this package is
// responsible only for what it builds on top: the event walk, span
// bookkeeping, and the text adjacency invariant of the resulting
// Document.
//
// # Related Packages
//
//   - github.com/mdsync/mdsync/ir - the document representation
//   - github.com/mdsync/mdsync/span - source spans and offset remaps
package parse
