package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPackageDocs(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"lib.go": `// Package lib does things.
//
// # Usage
//
//	lib.Do()
package lib
`,
	})
	fd, err := PackageDocs(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "Package lib does things.\n\n# Usage\n\n\tlib.Do()\n"
	if string(fd.Text) != want {
		t.Errorf("text:\n%q\nwant:\n%q", fd.Text, want)
	}
	if fd.File != filepath.Join(dir, "lib.go") {
		t.Errorf("file %q", fd.File)
	}
}

func TestPackageDocsDocGoFirst(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"alib.go": `// Package lib, wrong rendition.
package lib
`,
		"doc.go": `// Package lib, canonical rendition.
package lib
`,
	})
	fd, err := PackageDocs(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(fd.Text), "canonical") {
		t.Errorf("picked %q: %q", fd.File, fd.Text)
	}
}

func TestPackageDocsBuildTags(t *testing.T) {
	files := map[string]string{
		"lib_stub.go": `//go:build !cgo

// Package lib, stub rendition.
package lib
`,
		"lib_real.go": `//go:build cgo

// Package lib, real rendition.
package lib
`,
	}
	dir := writeFiles(t, files)
	fd, err := PackageDocs(dir, []string{"cgo"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(fd.Text), "real") {
		t.Errorf("picked %q with cgo tag", fd.File)
	}
	fd, err = PackageDocs(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(fd.Text), "stub") {
		t.Errorf("picked %q without tags", fd.File)
	}
}

func TestPackageDocsSkipsDirectives(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"lib.go": `// Package lib does things.
//go:generate stringer -type=Kind
package lib
`,
	})
	fd, err := PackageDocs(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(fd.Text), "go:generate") {
		t.Errorf("directive leaked: %q", fd.Text)
	}
}

func TestPackageDocsMissing(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"lib.go": "package lib\n",
	})
	_, err := PackageDocs(dir, nil)
	if !errors.Is(err, ErrNoPackageDocs) {
		t.Fatalf("got %v", err)
	}
}

func TestPackageDocsRemap(t *testing.T) {
	src := `// Package lib does things.
//
// Details follow.
package lib
`
	dir := writeFiles(t, map[string]string{"lib.go": src})
	fd, err := PackageDocs(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	text := string(fd.Text)
	// locate "Details" in both the extracted text and the file
	tOff := strings.Index(text, "Details")
	fOff := strings.Index(src, "Details")
	if tOff < 0 || fOff < 0 {
		t.Fatal("marker not found")
	}
	sp, ok := fd.Remap.Map(tOff, tOff+len("Details"))
	if !ok {
		t.Fatal("offset not remapped")
	}
	if sp.Source != fd.File {
		t.Errorf("source %q", sp.Source)
	}
	if sp.Start != fOff || sp.End != fOff+len("Details") {
		t.Errorf("got [%d:%d] want [%d:%d]", sp.Start, sp.End, fOff, fOff+len("Details"))
	}
}
