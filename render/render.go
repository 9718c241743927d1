// Package render draws diagnostic records to an output sink.
//
// It is the reference renderer for the abstract diagnostics produced by
// the diag package: severity-colored header, spans resolved to
// "source:line:column" through a span.Docs registry, and the offending
// source line with a caret underline. The core does not depend on this
// package; any sink can replace it.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mdsync/mdsync/diag"
	"github.com/mdsync/mdsync/span"
)

// Mode controls color output.
type Mode int

const (
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

// ParseMode parses "auto", "always" or "never".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("unknown color mode %q", s)
}

type sprintf func(format string, args ...any) string

// Colors maps diagnostic parts to formatting functions.
type Colors struct {
	Error   sprintf
	Warning sprintf
	Note    sprintf
	Pos     sprintf
	Caret   sprintf
	Gutter  sprintf
}

// NewColors returns the colored palette.
func NewColors() *Colors {
	return &Colors{
		Error:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Warning: color.New(color.FgYellow, color.Bold).SprintfFunc(),
		Note:    color.New(color.FgCyan).SprintfFunc(),
		Pos:     color.New(color.FgBlue).SprintfFunc(),
		Caret:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Gutter:  color.New(color.FgBlue).SprintfFunc(),
	}
}

// NoColors returns a palette that formats without escapes.
func NoColors() *Colors {
	return &Colors{
		Error:   fmt.Sprintf,
		Warning: fmt.Sprintf,
		Note:    fmt.Sprintf,
		Pos:     fmt.Sprintf,
		Caret:   fmt.Sprintf,
		Gutter:  fmt.Sprintf,
	}
}

// Renderer draws diagnostics to a writer, resolving spans through a
// source registry.
type Renderer struct {
	w      io.Writer
	docs   *span.Docs
	colors *Colors
}

// New builds a renderer. In ModeAuto, color is enabled only when w is a
// terminal.
func New(w io.Writer, docs *span.Docs, mode Mode) *Renderer {
	colors := NoColors()
	switch mode {
	case ModeAlways:
		colors = NewColors()
	case ModeAuto:
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			colors = NewColors()
		}
	}
	return &Renderer{w: w, docs: docs, colors: colors}
}

// Render draws one diagnostic.
func (r *Renderer) Render(d *diag.Diagnostic) error {
	head := r.colors.Error
	switch d.Severity {
	case diag.SeverityWarning:
		head = r.colors.Warning
	case diag.SeverityNote:
		head = r.colors.Note
	}
	if _, err := fmt.Fprintf(r.w, "%s %s\n",
		head("%s:", d.Severity), d.Message); err != nil {
		return err
	}
	if err := r.renderSpan(d.Primary, "-->"); err != nil {
		return err
	}
	for _, s := range d.Secondary {
		if err := r.renderSpan(s, ":::"); err != nil {
			return err
		}
	}
	if d.Note != "" {
		for _, line := range strings.Split(d.Note, "\n") {
			if _, err := fmt.Fprintf(r.w, "%s %s\n", r.colors.Note("note:"), line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderSpan(s span.Span, arrow string) error {
	if s.IsZero() {
		return nil
	}
	doc := r.docs.Get(s.Source)
	if doc == nil {
		_, err := fmt.Fprintf(r.w, "  %s %s\n", r.colors.Gutter(arrow), r.colors.Pos("%s", s))
		return err
	}
	line, col := doc.LineCol(s.Start)
	if _, err := fmt.Fprintf(r.w, "  %s %s\n", r.colors.Gutter(arrow),
		r.colors.Pos("%s:%d:%d", s.Source, line+1, col+1)); err != nil {
		return err
	}
	text := doc.Line(line)
	gutter := fmt.Sprintf("%4d", line+1)
	if _, err := fmt.Fprintf(r.w, "%s %s\n",
		r.colors.Gutter("%s |", gutter), string(text)); err != nil {
		return err
	}
	width := s.End - s.Start
	if endLine, _ := doc.LineCol(s.End); endLine != line || width <= 0 {
		width = len(text) - col
	}
	if width <= 0 {
		width = 1
	}
	_, err := fmt.Fprintf(r.w, "%s %s%s\n",
		r.colors.Gutter("     |"),
		strings.Repeat(" ", col),
		r.colors.Caret("%s", strings.Repeat("^", width)))
	return err
}
