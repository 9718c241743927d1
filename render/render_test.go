package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdsync/mdsync/diag"
	"github.com/mdsync/mdsync/span"
)

func TestRender(t *testing.T) {
	docs := span.NewDocs()
	docs.Add("README.md", []byte("# title\n\nhello world\n"))
	d := &diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "mismatch",
		Primary:  span.Span{Source: "README.md", Start: 9, End: 14},
		Note:     "left  text part: \"hello\"",
	}
	buf := &bytes.Buffer{}
	if err := New(buf, docs, ModeNever).Render(d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	wants := []string{
		"error: mismatch",
		"--> README.md:3:1",
		"   3 | hello world",
		"     | ^^^^^",
		"note: left  text part",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output misses %q:\n%s", w, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color escapes in ModeNever output:\n%s", out)
	}
}

func TestRenderUnknownSource(t *testing.T) {
	buf := &bytes.Buffer{}
	d := &diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "mismatch",
		Primary:  span.Span{Source: "gone.md", Start: 1, End: 2},
	}
	if err := New(buf, span.NewDocs(), ModeNever).Render(d); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "gone.md[1:2]") {
		t.Errorf("got %q", buf.String())
	}
}

func TestRenderZeroPrimary(t *testing.T) {
	buf := &bytes.Buffer{}
	d := &diag.Diagnostic{Severity: diag.SeverityError, Message: "boom"}
	if err := New(buf, span.NewDocs(), ModeNever).Render(d); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "error: boom\n" {
		t.Errorf("got %q", got)
	}
}

type modeTest struct {
	in   string
	want Mode
	err  bool
}

func TestParseMode(t *testing.T) {
	mts := []modeTest{
		{in: "auto", want: ModeAuto},
		{in: "", want: ModeAuto},
		{in: "always", want: ModeAlways},
		{in: "never", want: ModeNever},
		{in: "sometimes", err: true},
	}
	for _, mt := range mts {
		got, err := ParseMode(mt.in)
		if (err != nil) != mt.err {
			t.Errorf("ParseMode(%q): err=%v", mt.in, err)
			continue
		}
		if err == nil && got != mt.want {
			t.Errorf("ParseMode(%q): got %v want %v", mt.in, got, mt.want)
		}
	}
}
