package span

import "sort"

// Range is one contiguous remapping: bytes [From.Start, From.End) of an
// extracted text correspond to bytes [To.Start, To.End) of the original
// source.
type Range struct {
	From Span
	To   Span
}

// Remap translates offsets in an extracted text (for example a package's
// doc comment pulled out of its source file) back to locations in the
// original file. Ranges are kept sorted by From.Start.
type Remap struct {
	ranges []Range
}

// NewRemap builds a remap from the given ranges.
func NewRemap(ranges []Range) *Remap {
	r := &Remap{ranges: append([]Range(nil), ranges...)}
	sort.Slice(r.ranges, func(i, j int) bool {
		return r.ranges[i].From.Start < r.ranges[j].From.Start
	})
	return r
}

// Add appends a range; ranges must be added in ascending From order or
// NewRemap used instead.
func (r *Remap) Add(fromStart, fromEnd int, to Span) {
	r.ranges = append(r.ranges, Range{
		From: Span{Start: fromStart, End: fromEnd},
		To:   to,
	})
}

// Map translates the extracted-text byte range [start, end) to a span in
// the original source. The translated span is anchored at the range
// containing start and clamped to that range's target; a mapping that
// crosses range boundaries is truncated rather than split. The second
// result is false if start falls outside every range.
func (r *Remap) Map(start, end int) (Span, bool) {
	n := len(r.ranges)
	i := sort.Search(n, func(i int) bool {
		return r.ranges[i].From.End > start
	})
	if i == n || start < r.ranges[i].From.Start {
		return Span{}, false
	}
	rng := &r.ranges[i]
	res := rng.To
	res.Start = rng.To.Start + (start - rng.From.Start)
	res.End = rng.To.Start + (end - rng.From.Start)
	if res.End > rng.To.End {
		res.End = rng.To.End
	}
	if res.Start > res.End {
		res.Start = res.End
	}
	return res, true
}
