package mdsync

import (
	"errors"
	"strings"
	"testing"

	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/modify"
	"github.com/mdsync/mdsync/parse"
)

const testReadme = "# mylib\n" +
	"\n" +
	"[![CI](https://github.com/o/mylib/actions/workflows/ci.yml/badge.svg)](https://github.com/o/mylib/actions)\n" +
	"\n" +
	"Intro paragraph with `Do`.\n" +
	"\n" +
	"## Usage\n" +
	"\n" +
	"```go\n" +
	"lib.Do()\n" +
	"```\n"

const testDocs = "Intro paragraph with `Do`.\n" +
	"\n" +
	"# Usage\n" +
	"\n" +
	"```\n" +
	"# setup()\n" +
	"lib.Do()\n" +
	"```\n"

func testMods() (readmeMods, docsMods []modify.Modifier) {
	readmeMods = []modify.Modifier{modify.RemoveBadgesParagraph}
	docsMods = []modify.Modifier{
		modify.IncrementHeadingLevels,
		modify.AddTitle("mylib"),
		modify.DefaultCodeBlockTag("go"),
		modify.RemoveTestCodeBlockTags,
		modify.RemoveHiddenCodeLines("go"),
	}
	return readmeMods, docsMods
}

func mustParse(t *testing.T, source, src string) *ir.Document {
	t.Helper()
	d, err := parse.Parse([]byte(src), source)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRunInSync(t *testing.T) {
	readme := mustParse(t, "README.md", testReadme)
	docs := mustParse(t, "lib.go#docs", testDocs)
	readmeMods, docsMods := testMods()
	d, err := Run(readme, docs, readmeMods, docsMods)
	if err != nil {
		t.Fatal(err)
	}
	if d != nil {
		t.Fatalf("unexpected diagnostic: %s", d.Message)
	}
}

func TestRunTextDrift(t *testing.T) {
	readme := mustParse(t, "README.md",
		strings.Replace(testReadme, "Intro paragraph", "Intro paragraf", 1))
	docs := mustParse(t, "lib.go#docs", testDocs)
	readmeMods, docsMods := testMods()
	d, err := Run(readme, docs, readmeMods, docsMods)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil {
		t.Fatal("drift not detected")
	}
	if d.Primary.Source != "README.md" {
		t.Errorf("primary %v", d.Primary)
	}
	if !strings.Contains(d.Note, "text part") {
		t.Errorf("note %q", d.Note)
	}
}

func TestRunMissingSection(t *testing.T) {
	readme := mustParse(t, "README.md", testReadme+"\n## License\n\nMIT\n")
	docs := mustParse(t, "lib.go#docs", testDocs)
	readmeMods, docsMods := testMods()
	d, err := Run(readme, docs, readmeMods, docsMods)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil {
		t.Fatal("extra readme section not detected")
	}
	if !strings.Contains(d.Message, "does not match any") {
		t.Errorf("message %q", d.Message)
	}
}

func TestRunForbiddenLink(t *testing.T) {
	readme := mustParse(t, "README.md",
		testReadme+"\nsee [docs](https://pkg.go.dev/github.com/o/mylib)\n")
	docs := mustParse(t, "lib.go#docs", testDocs)
	readmeMods, docsMods := testMods()
	readmeMods = append(readmeMods, modify.DisallowLinkPrefix("https://pkg.go.dev/"))
	d, err := Run(readme, docs, readmeMods, docsMods)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil {
		t.Fatal("forbidden link not reported")
	}
	if d.Primary.Source != "README.md" || d.Primary.IsZero() {
		t.Errorf("primary %v", d.Primary)
	}
}

func TestRunUnanchoredErrorSurfaces(t *testing.T) {
	readme := mustParse(t, "README.md", testReadme)
	docs := mustParse(t, "lib.go#docs", testDocs)
	readmeMods, docsMods := testMods()
	readmeMods = append(readmeMods, modify.RemoveSection("Nope", 2))
	d, err := Run(readme, docs, readmeMods, docsMods)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, modify.ErrSectionNotFound) {
		t.Errorf("got %v", err)
	}
	if d != nil {
		t.Errorf("unexpected diagnostic: %s", d.Message)
	}
}

func TestCheckIdentity(t *testing.T) {
	d := mustParse(t, "x.md", "a *b* `c`\n\n- 1\n- 2\n")
	if got := Check(d, d); got != nil {
		t.Fatalf("self-comparison diverged: %s", got.Message)
	}
}
