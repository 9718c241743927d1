// Package ir provides the intermediate representation (IR) for markdown
// documents under comparison.
//
// # Overview
//
// A Document is an ordered sequence of top-level Items plus provenance
// (the source identifier of the text it was parsed from). An Item is one
// markdown construct: a heading, paragraph, code block, link, text run and
// so on. Block-level items form one flat top-level sequence; items that
// carry inline content own a nested ordered sequence of child Items.
//
// The IR works as a tagged union: the Type field indicates the item's
// kind, and values are placed in fields depending on that kind. Every
// Item carries a span.Span referencing the byte range it was parsed from,
// so a mismatch found deep inside a document can be anchored back to the
// original source.
//
// # Item Types
//
//   - TextType, CodeType, HTMLType: string content in Text
//   - HeadingType: Level plus inline Children
//   - ParagraphType, BlockQuoteType, EmphasisType, StrongType,
//     StrikethroughType: Children only
//   - CodeBlockType: Tags (language tag list), Text (body), Fenced,
//     StripHidden
//   - ListType: Ordered flag plus ListItemType Children, each of which
//     holds a block sequence
//   - LinkType, ImageType: Target, Title plus inline Children
//   - SoftBreakType, HardBreakType, RuleType: no payload
//
// # Invariants
//
// After Normalize, adjacent TextType items never occur in any child
// sequence and zero-length text runs are gone. Normalize is idempotent.
// Every transformation in this module tree re-establishes this invariant
// before returning, so comparison is never defeated by incidental
// tokenization boundaries.
//
// Documents are immutable by convention: transformations clone, the diff
// engine only reads. Items never hold back-references to their Document.
//
// # Related Packages
//
//   - github.com/mdsync/mdsync/parse - builds Documents from markdown text
//   - github.com/mdsync/mdsync/modify - pure Document transformations
//   - github.com/mdsync/mdsync/diff - structural comparison
package ir
