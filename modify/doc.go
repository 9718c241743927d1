// Package modify provides the transformation catalogue applied to IR
// documents before comparison.
//
// Readme and extracted docs legitimately differ in expected ways: the
// readme opens with a badge paragraph, heading levels are offset by the
// generated title, links use different forms, examples hide setup lines.
// Each modifier reconciles one such difference. Modifiers are pure: they
// take a Document and return a new one (or an error), never mutating the
// input, so the pre-transform document stays available for diagnostics.
//
// Order is semantically significant and chosen by the caller; for
// example link-form normalization must run after badge removal because
// badge paragraphs may contain the same link patterns. Apply runs a
// chain in order and halts at the first failing modifier.
//
//	doc, err := modify.Apply(doc,
//	    modify.RemoveBadgesParagraph,
//	    modify.RemoveSection("License", 2),
//	    modify.AbsoluteLinks("https://github.com/acme/widget/blob/master/"),
//	)
//
// Every modifier re-establishes the text adjacency invariant before
// returning.
package modify
