package modify

import (
	"errors"
	"testing"

	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/parse"
)

func mustParse(t *testing.T, src string) *ir.Document {
	t.Helper()
	d, err := parse.Parse([]byte(src), "t.md")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

type badgeURLTest struct {
	url  string
	want bool
}

func TestMatchesBadgeURL(t *testing.T) {
	buts := []badgeURLTest{
		{url: "https://img.shields.io/crates/v/x.svg", want: true},
		{url: "https://github.com/o/r/workflows/CI/badge.svg", want: true},
		{url: "https://github.com/o/r/actions/workflows/ci.yml/badge.svg", want: true},
		{url: "https://github.com/o/r/actions/workflows/ci.yml/badge.svg?branch=main", want: true},
		{url: "https://goreportcard.com/badge/github.com/o/r", want: true},
		{url: "https://pkg.go.dev/badge/github.com/o/r.svg", want: true},
		{url: "https://codecov.io/gh/o/r/branch/main/graph/badge.svg", want: true},
		{url: "https://example.com/logo.svg", want: false},
		{url: "https://github.com/o/r", want: false},
		{url: "logo.png", want: false},
	}
	for _, but := range buts {
		if got := MatchesBadgeURL(but.url); got != but.want {
			t.Errorf("MatchesBadgeURL(%q): got %v want %v", but.url, got, but.want)
		}
	}
}

func TestRemoveBadgesParagraph(t *testing.T) {
	src := "# pkg\n\n" +
		"[![CI](https://github.com/o/r/actions/workflows/ci.yml/badge.svg)](https://github.com/o/r/actions)\n" +
		"![cov](https://codecov.io/gh/o/r/branch/main/graph/badge.svg)\n\n" +
		"intro text\n"
	d := mustParse(t, src)
	got, err := RemoveBadgesParagraph(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("got %d items", len(got.Items))
	}
	if got.Items[1].Type != ir.ParagraphType || got.Items[1].InlineText() != "intro text" {
		t.Errorf("unexpected second item %v", got.Items[1].Type)
	}
	// input document untouched
	if len(d.Items) != 3 {
		t.Errorf("input mutated: %d items", len(d.Items))
	}
}

func TestRemoveBadgesParagraphKeepsLogo(t *testing.T) {
	src := "![logo](https://example.com/logo.svg)\n\ntext\n"
	d := mustParse(t, src)
	got, err := RemoveBadgesParagraph(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 2 {
		t.Errorf("logo paragraph removed: %d items", len(got.Items))
	}
}

func TestRemoveBadgesParagraphMixedWithLogo(t *testing.T) {
	// one recognized badge marks the whole row, logo included
	src := "[![CI](https://github.com/o/r/actions/workflows/ci.yml/badge.svg)](https://github.com/o/r/actions)\n" +
		"![logo](https://example.com/logo.svg)\n\ntext\n"
	d := mustParse(t, src)
	got, err := RemoveBadgesParagraph(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("badge paragraph kept: %d items remain", len(got.Items))
	}
	if got.Items[0].InlineText() != "text" {
		t.Errorf("wrong item survived: %q", got.Items[0].InlineText())
	}
}

func TestRemoveSection(t *testing.T) {
	src := "# pkg\n\n## Usage\n\nuse it\n\n## Documentation\n\nsee docs\n\nmore\n\n## License\n\nMIT\n"
	d := mustParse(t, src)
	got, err := Apply(d, RemoveDocumentationSection)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range got.Items {
		if it.Type == ir.HeadingType && it.InlineText() == "Documentation" {
			t.Fatalf("section still present")
		}
		if it.Type == ir.ParagraphType && it.InlineText() == "see docs" {
			t.Fatalf("section body still present")
		}
	}
	// License survives
	last := got.Items[len(got.Items)-1]
	if last.InlineText() != "MIT" {
		t.Errorf("tail lost, last item %q", last.InlineText())
	}
}

func TestRemoveSectionNotFound(t *testing.T) {
	d := mustParse(t, "# pkg\n\ntext\n")
	_, err := RemoveSection("Nope", 2)(d)
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestIncrementHeadingLevels(t *testing.T) {
	d := mustParse(t, "# a\n\n## b\n\n###### deep\n")
	got, err := Apply(d, IncrementHeadingLevels)
	if err != nil {
		t.Fatal(err)
	}
	levels := []int{}
	for _, it := range got.Items {
		levels = append(levels, it.Level)
	}
	want := []int{2, 3, 6}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("got levels %v want %v", levels, want)
		}
	}
	// twice increments twice, still capped
	got, err = Apply(got, IncrementHeadingLevels)
	if err != nil {
		t.Fatal(err)
	}
	if got.Items[0].Level != 3 || got.Items[2].Level != 6 {
		t.Errorf("second increment: %d %d", got.Items[0].Level, got.Items[2].Level)
	}
}

func TestAddTitle(t *testing.T) {
	d := mustParse(t, "intro\n")
	got, err := Apply(d, AddTitle("mdsync"))
	if err != nil {
		t.Fatal(err)
	}
	h := got.Items[0]
	if h.Type != ir.HeadingType || h.Level != 1 || h.InlineText() != "mdsync" {
		t.Fatalf("got %+v", h)
	}
	if !h.Span.IsZero() {
		t.Errorf("created heading carries a span: %v", h.Span)
	}
	if h.Note != "AddTitle" {
		t.Errorf("note %q", h.Note)
	}
}

type absURLTest struct {
	url  string
	want bool
}

func TestIsAbsoluteURL(t *testing.T) {
	auts := []absURLTest{
		{url: "https://x.io/a", want: true},
		{url: "http://x.io", want: true},
		{url: "ftp://x.io", want: true},
		{url: "git+ssh://x.io", want: true},
		{url: "docs/usage.md", want: false},
		{url: "./a.md", want: false},
		{url: "#section", want: false},
		{url: "1abc://x", want: false},
		{url: ":nope", want: false},
	}
	for _, aut := range auts {
		if got := IsAbsoluteURL(aut.url); got != aut.want {
			t.Errorf("IsAbsoluteURL(%q): got %v want %v", aut.url, got, aut.want)
		}
	}
}

func TestAbsoluteLinks(t *testing.T) {
	src := "[a](docs/a.md) [b](https://x.io/b) [c](#frag)\n"
	d := mustParse(t, src)
	got, err := Apply(d, AbsoluteLinks("https://github.com/o/r/blob/main/"))
	if err != nil {
		t.Fatal(err)
	}
	var targets []string
	got.Visit(func(it *ir.Item, isPost bool) (bool, error) {
		if !isPost && it.Type == ir.LinkType {
			targets = append(targets, it.Target)
		}
		return true, nil
	})
	want := []string{
		"https://github.com/o/r/blob/main/docs/a.md",
		"https://x.io/b",
		"#frag",
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Fatalf("got targets %v want %v", targets, want)
		}
	}
}

func TestDisallowLinkPrefix(t *testing.T) {
	src := "see [docs](https://pkg.go.dev/x/y)\n"
	d := mustParse(t, src)
	_, err := Apply(d, DisallowLinkPrefix("https://pkg.go.dev/"))
	if err == nil {
		t.Fatal("expected error")
	}
	ferr := &ForbiddenLinkError{}
	if !errors.As(err, &ferr) {
		t.Fatalf("got %T", err)
	}
	if ferr.URL != "https://pkg.go.dev/x/y" {
		t.Errorf("url %q", ferr.URL)
	}
	if ferr.Span.IsZero() {
		t.Errorf("no span on forbidden link")
	}
	ok := mustParse(t, "see [docs](docs/a.md)\n")
	if _, err := Apply(ok, DisallowLinkPrefix("https://pkg.go.dev/")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDefaultCodeBlockTag(t *testing.T) {
	src := "```\ncall()\n```\n\n```sh\nls\n```\n"
	d := mustParse(t, src)
	got, err := Apply(d, DefaultCodeBlockTag("go"))
	if err != nil {
		t.Fatal(err)
	}
	if tags := got.Items[0].Tags; len(tags) != 1 || tags[0] != "go" {
		t.Errorf("untagged block: %v", tags)
	}
	if tags := got.Items[1].Tags; len(tags) != 1 || tags[0] != "sh" {
		t.Errorf("tagged block changed: %v", tags)
	}
}

func TestRemoveTestCodeBlockTags(t *testing.T) {
	src := "```go,no_run\ncall()\n```\n"
	d := mustParse(t, src)
	got, err := Apply(d, RemoveTestCodeBlockTags)
	if err != nil {
		t.Fatal(err)
	}
	if tags := got.Items[0].Tags; len(tags) != 1 || tags[0] != "go" {
		t.Errorf("got tags %v", tags)
	}
	if got.Items[0].Note == "" {
		t.Errorf("no note on rewritten block")
	}
}

func TestRemoveHiddenCodeLines(t *testing.T) {
	src := "```go\n# import \"x\"\ncall()\n```\n"
	d := mustParse(t, src)
	got, err := Apply(d, RemoveHiddenCodeLines("go"))
	if err != nil {
		t.Fatal(err)
	}
	cb := got.Items[0]
	if !cb.StripHidden {
		t.Fatal("StripHidden not set")
	}
	if ir.CodeBody(cb) != "call()\n" {
		t.Errorf("stripped body %q", ir.CodeBody(cb))
	}
	if cb.Text != "# import \"x\"\ncall()\n" {
		t.Errorf("raw body changed: %q", cb.Text)
	}
}

func TestApplyHaltsOnError(t *testing.T) {
	d := mustParse(t, "text\n")
	ran := false
	_, err := Apply(d,
		func(*ir.Document) (*ir.Document, error) { return nil, errors.New("boom") },
		func(in *ir.Document) (*ir.Document, error) { ran = true; return in, nil })
	if err == nil || ran {
		t.Fatalf("err=%v ran=%v", err, ran)
	}
}
