// Package mdsync checks that a project readme and the front-page
// documentation extracted from its source agree.
//
// # Pipeline
//
// Both sides are parsed into the item tree of package ir, prepared
// with modifiers from package modify to erase the differences that
// are expected between the two renditions (badges, heading depth,
// code block tags and the like), and then compared structurally with
// package diff. The first divergence, if any, is turned into a
// source-anchored diagnostic by package diag.
//
// # Commands
//
// The mdsync command under cmd/mdsync drives this pipeline from a
// go.mod manifest and an optional .mdsync.yaml configuration.
package mdsync

import (
	"github.com/mdsync/mdsync/debug"
	"github.com/mdsync/mdsync/diag"
	"github.com/mdsync/mdsync/diff"
	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/modify"
)

// Check compares a prepared readme against prepared docs and returns a
// diagnostic describing the first divergence, or nil when the two
// agree.
func Check(readme, docs *ir.Document) *diag.Diagnostic {
	div := diff.Compare(readme, docs)
	if debug.Diff() {
		debug.Logf("diff: synced=%v\nleft: %v\nright: %v\n",
			div.Synced, readme, docs)
	}
	return diag.Build(div)
}

// Run applies the modifier chains to each side and compares the
// results. Modifier failures that carry source positions (such as a
// forbidden link) come back as diagnostics; any other failure is
// returned as an error.
func Run(readme, docs *ir.Document, readmeMods, docsMods []modify.Modifier) (*diag.Diagnostic, error) {
	readme, err := modify.Apply(readme, readmeMods...)
	if err != nil {
		if d := diag.BuildFromError(err); d != nil {
			return d, nil
		}
		return nil, err
	}
	docs, err = modify.Apply(docs, docsMods...)
	if err != nil {
		if d := diag.BuildFromError(err); d != nil {
			return d, nil
		}
		return nil, err
	}
	return Check(readme, docs), nil
}
