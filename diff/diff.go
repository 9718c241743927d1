// Package diff compares two finalized IR documents for structural
// equality.
//
// The walk is strictly positional: both top-level sequences advance
// together and the first failing pair wins. No alignment or
// edit-distance search is performed; readme and docs are expected to be
// near-identical once modifiers run, and a deterministic first
// divergence is more actionable than a best-effort alignment.
package diff

import (
	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/span"
)

// Divergence is the comparison result. Synced means the documents match
// position for position. Otherwise Left and Right identify the first
// differing items (nil when that side ran out of items) and the paths
// give their ancestor chains, outermost first.
type Divergence struct {
	Synced bool

	Left  *ir.Item
	Right *ir.Item

	LeftPath  []*ir.Item
	RightPath []*ir.Item

	LeftSpan  span.Span
	RightSpan span.Span
}

// Compare walks both documents depth-first in lockstep and reports the
// first structural divergence, descending into nested content so a
// mismatch is reported at its actual depth. Extra trailing items on one
// side diverge against an empty counterpart.
func Compare(left, right *ir.Document) Divergence {
	if div, ok := compareSeq(left.Items, right.Items, nil, nil); ok {
		return div
	}
	return Divergence{Synced: true}
}

func compareSeq(ls, rs []*ir.Item, lpath, rpath []*ir.Item) (Divergence, bool) {
	n := len(ls)
	if len(rs) > n {
		n = len(rs)
	}
	for i := 0; i < n; i++ {
		switch {
		case i >= len(ls):
			return diverged(nil, rs[i], lpath, rpath), true
		case i >= len(rs):
			return diverged(ls[i], nil, lpath, rpath), true
		}
		if div, ok := compareItem(ls[i], rs[i], lpath, rpath); ok {
			return div, true
		}
	}
	return Divergence{}, false
}

func compareItem(l, r *ir.Item, lpath, rpath []*ir.Item) (Divergence, bool) {
	if l.Type != r.Type {
		return diverged(l, r, lpath, rpath), true
	}
	if !ir.SameAttrs(l, r) {
		return diverged(l, r, lpath, rpath), true
	}
	return compareSeq(l.Children, r.Children, append(lpath, l), append(rpath, r))
}

func diverged(l, r *ir.Item, lpath, rpath []*ir.Item) Divergence {
	div := Divergence{
		Left:      l,
		Right:     r,
		LeftPath:  append([]*ir.Item(nil), lpath...),
		RightPath: append([]*ir.Item(nil), rpath...),
	}
	if l != nil {
		div.LeftSpan = l.Span
	}
	if r != nil {
		div.RightSpan = r.Span
	}
	return div
}
