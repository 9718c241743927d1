package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mdsync/mdsync/span"
)

func text(s string) *Item {
	return &Item{Type: TextType, Text: s}
}

type normalizeTest struct {
	name string
	in   []*Item
	want []*Item
}

func TestNormalize(t *testing.T) {
	nts := []normalizeTest{
		{
			name: "merge-adjacent",
			in:   []*Item{text("a"), text("b"), text("c")},
			want: []*Item{text("abc")},
		},
		{
			name: "drop-empty",
			in:   []*Item{text(""), text("a"), text(""), text("b")},
			want: []*Item{text("ab")},
		},
		{
			name: "boundary",
			in: []*Item{
				text("a"),
				{Type: CodeType, Text: "x"},
				text("b"),
				text("c"),
			},
			want: []*Item{
				text("a"),
				{Type: CodeType, Text: "x"},
				text("bc"),
			},
		},
		{
			name: "recursive",
			in: []*Item{{
				Type:     EmphasisType,
				Children: []*Item{text("a"), text("b")},
			}},
			want: []*Item{{
				Type:     EmphasisType,
				Children: []*Item{text("ab")},
			}},
		},
		{
			name: "empty-only",
			in:   []*Item{text(""), text("")},
			want: []*Item{},
		},
	}
	for _, nt := range nts {
		t.Run(nt.name, func(t *testing.T) {
			got := Normalize(nt.in)
			if d := cmp.Diff(nt.want, got); d != "" {
				t.Errorf("normalize mismatch (-want +got):\n%s", d)
			}
			again := Normalize(got)
			if d := cmp.Diff(got, again); d != "" {
				t.Errorf("not idempotent (-first +second):\n%s", d)
			}
		})
	}
}

func TestNormalizeSpanUnion(t *testing.T) {
	in := []*Item{
		{Type: TextType, Text: "ab", Span: span.Span{Source: "t.md", Start: 0, End: 2}},
		{Type: TextType, Text: "cd", Span: span.Span{Source: "t.md", Start: 2, End: 4}},
	}
	got := Normalize(in)
	if len(got) != 1 {
		t.Fatalf("got %d items", len(got))
	}
	want := span.Span{Source: "t.md", Start: 0, End: 4}
	if got[0].Span != want {
		t.Errorf("got span %v want %v", got[0].Span, want)
	}
	if got[0].Text != "abcd" {
		t.Errorf("got text %q", got[0].Text)
	}
	// the input items are not mutated
	if in[0].Text != "ab" {
		t.Errorf("input mutated: %q", in[0].Text)
	}
}

func TestNormalizeDocument(t *testing.T) {
	d := &Document{
		Source: "t.md",
		Items: []*Item{{
			Type:     ParagraphType,
			Children: []*Item{text("a"), text("b")},
		}},
	}
	nd := NormalizeDocument(d)
	if len(nd.Items[0].Children) != 1 || nd.Items[0].Children[0].Text != "ab" {
		t.Errorf("got %+v", nd.Items[0].Children)
	}
	if len(d.Items[0].Children) != 2 {
		t.Errorf("input document mutated")
	}
}
