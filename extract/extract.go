// Package extract pulls front-page documentation out of Go source
// comments.
//
// The package doc comment is the source of truth the readme duplicates.
// Extraction yields raw markdown plus an offset remap back to the file
// the comment lives in, so diagnostics point at the doc comment line
// that diverged rather than at a synthetic buffer. Files excluded by
// build constraints for the configured tag set are skipped, since their
// doc comments never reach the rendered documentation.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mdsync/mdsync/span"
)

// ErrNoPackageDocs reports a package without a doc comment.
var ErrNoPackageDocs = errors.New("no package documentation found")

// FileDocs is a package doc comment extracted from one source file.
type FileDocs struct {
	// File is the path of the file the docs came from.
	File string
	// Text is the extracted markdown.
	Text []byte
	// Remap translates Text offsets back to File offsets.
	Remap *span.Remap
}

// DocsSource is the synthetic source identifier for the extracted text,
// distinct from the file itself so both can be registered for
// rendering.
func (fd *FileDocs) DocsSource() string {
	return fd.File + "#docs"
}

// PackageDocs extracts the package doc comment from the Go package in
// dir. Files are visited with doc.go first, then lexicographically; the
// first doc comment wins. tags is the build tag set considered
// satisfied.
func PackageDocs(dir string, tags []string) (*FileDocs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading package dir: %w", err)
	}
	tagSet := map[string]bool{}
	for _, t := range tags {
		tagSet[t] = true
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == "doc.go") != (names[j] == "doc.go") {
			return names[i] == "doc.go"
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if !buildMatches(src, tagSet) {
			continue
		}
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.PackageClauseOnly)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if f.Doc == nil {
			continue
		}
		return fromCommentGroup(path, fset, f.Doc), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoPackageDocs, dir)
}

// buildMatches evaluates the file's //go:build line, if any, against the
// satisfied tag set.
func buildMatches(src []byte, tags map[string]bool) bool {
	for _, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "package ") {
			break
		}
		if !constraint.IsGoBuild(trimmed) {
			continue
		}
		expr, err := constraint.Parse(trimmed)
		if err != nil {
			continue
		}
		return expr.Eval(func(tag string) bool { return tags[tag] })
	}
	return true
}

// fromCommentGroup assembles the docs text one comment line at a time,
// recording where each line sits in the original file.
func fromCommentGroup(path string, fset *token.FileSet, doc *ast.CommentGroup) *FileDocs {
	var text bytes.Buffer
	remap := span.NewRemap(nil)

	addLine := func(content string, fileOff int) {
		from := text.Len()
		text.WriteString(content)
		text.WriteString("\n")
		remap.Add(from, from+len(content), span.Span{
			Source: path,
			Start:  fileOff,
			End:    fileOff + len(content),
		})
	}

	for _, c := range doc.List {
		off := fset.Position(c.Slash).Offset
		raw := c.Text
		if strings.HasPrefix(raw, "//") {
			content := raw[2:]
			contentOff := off + 2
			if strings.HasPrefix(content, " ") {
				content = content[1:]
				contentOff++
			}
			if isDirective(content) {
				continue
			}
			addLine(content, contentOff)
			continue
		}
		// block comment: strip the markers, keep inner lines as-is
		inner := strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
		lineOff := off + 2
		for _, line := range strings.Split(inner, "\n") {
			addLine(line, lineOff)
			lineOff += len(line) + 1
		}
	}
	return &FileDocs{File: path, Text: text.Bytes(), Remap: remap}
}

// isDirective reports a "//go:generate"-style directive line, which the
// doc renderer omits.
func isDirective(content string) bool {
	if !strings.HasPrefix(content, "go:") {
		return false
	}
	return !strings.ContainsAny(strings.SplitN(content, " ", 2)[0], " \t")
}
