package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/mdsync/mdsync"
	"github.com/mdsync/mdsync/config"
	"github.com/mdsync/mdsync/extract"
	"github.com/mdsync/mdsync/ir"
	"github.com/mdsync/mdsync/manifest"
	"github.com/mdsync/mdsync/modify"
	"github.com/mdsync/mdsync/parse"
	"github.com/mdsync/mdsync/render"
	"github.com/mdsync/mdsync/span"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: check takes no arguments", cli.ErrUsage)
	}
	dir := cfg.projectDir()
	pcfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if cfg.Readme != "" {
		pcfg.Readme = cfg.Readme
	}
	if cfg.Pkg != "" {
		pcfg.Package = cfg.Pkg
	}
	mf, err := manifest.Load(dir)
	if err != nil {
		return err
	}

	docsReg := span.NewDocs()
	readmePath := filepath.Join(dir, pcfg.Readme)
	readmeSrc, err := os.ReadFile(readmePath)
	if err != nil {
		return err
	}
	docsReg.Add(readmePath, readmeSrc)
	readmeDoc, err := parse.Parse(readmeSrc, readmePath)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", readmePath, err)
	}

	fd, err := extract.PackageDocs(filepath.Join(dir, pcfg.Package), pcfg.BuildTags)
	if err != nil {
		return err
	}
	fileSrc, err := os.ReadFile(fd.File)
	if err != nil {
		return err
	}
	docsReg.Add(fd.File, fileSrc)
	docsReg.Add(fd.DocsSource(), fd.Text)
	docsDoc, err := parse.Parse(fd.Text, fd.DocsSource(), parse.WithRemap(fd.Remap))
	if err != nil {
		return fmt.Errorf("parsing docs of %s: %w", fd.File, err)
	}

	readmeMods, docsMods := modifierChains(pcfg, mf)
	d, err := mdsync.Run(readmeDoc, docsDoc, readmeMods, docsMods)
	if err != nil {
		return err
	}
	if d != nil {
		r := render.New(cc.Out, docsReg, cfg.ColorMode)
		if err := r.Render(d); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s is in sync with the docs of %s\n",
			pcfg.Readme, mf.Module)
	}
	return nil
}

// modifierChains builds the per-side preparation pipelines from the
// project configuration and module manifest.
func modifierChains(pcfg *config.Config, mf *manifest.Manifest) (readmeMods, docsMods []modify.Modifier) {
	readmeMods = []modify.Modifier{modify.RemoveBadgesParagraph}
	if !slices.Contains(pcfg.KeepSections, "Documentation") {
		readmeMods = append(readmeMods,
			tolerateMissingSection(modify.RemoveDocumentationSection))
	}
	for _, s := range pcfg.DropSections {
		readmeMods = append(readmeMods, modify.RemoveSection(s, 2))
	}
	for _, p := range pcfg.DisallowPrefixes {
		readmeMods = append(readmeMods, modify.DisallowLinkPrefix(p))
	}

	docsMods = []modify.Modifier{modify.IncrementHeadingLevels}
	if !pcfg.NoTitle {
		title := mf.Name()
		if pcfg.Title != nil {
			title = *pcfg.Title
		}
		docsMods = append(docsMods, modify.AddTitle(title))
	}
	docsMods = append(docsMods,
		modify.DefaultCodeBlockTag(pcfg.CodeBlockTag),
		modify.RemoveTestCodeBlockTags,
		modify.RemoveHiddenCodeLines(pcfg.CodeBlockTag))

	if !pcfg.AllowRelativeLinks {
		if blob, ok := mf.BlobPrefix(pcfg.Branch); ok {
			readmeMods = append(readmeMods, modify.AbsoluteLinks(blob))
		}
		docsMods = append(docsMods, modify.AbsoluteDocsLinks(mf.DocsPrefix()))
	}
	return readmeMods, docsMods
}

// tolerateMissingSection turns a section removal into a no-op when the
// section is absent.
func tolerateMissingSection(m modify.Modifier) modify.Modifier {
	return func(d *ir.Document) (*ir.Document, error) {
		nd, err := m(d)
		if errors.Is(err, modify.ErrSectionNotFound) {
			return d, nil
		}
		return nd, err
	}
}
