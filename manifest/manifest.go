// Package manifest loads module metadata used to configure link
// modifiers: the repository URL a readme's relative links resolve
// against, and the documentation URL the extracted docs publish under.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Manifest is the parsed module metadata.
type Manifest struct {
	// Dir is the directory holding go.mod.
	Dir string
	// Module is the module path.
	Module string
}

// Load reads and parses dir/go.mod.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if f.Module == nil {
		return nil, fmt.Errorf("%s: missing module directive", path)
	}
	return &Manifest{Dir: dir, Module: f.Module.Mod.Path}, nil
}

// forgeHosts are module hosts whose path doubles as a browsable
// repository URL.
var forgeHosts = []string{
	"github.com/",
	"gitlab.com/",
	"bitbucket.org/",
	"codeberg.org/",
}

// RepositoryURL derives the repository URL from the module path. The
// second result is false when the host is not a known forge.
func (m *Manifest) RepositoryURL() (string, bool) {
	for _, host := range forgeHosts {
		if strings.HasPrefix(m.Module, host) {
			return "https://" + m.Module, true
		}
	}
	return "", false
}

// BlobPrefix returns the absolute URL prefix of in-repository files on
// the given branch, the base relative readme links resolve against.
func (m *Manifest) BlobPrefix(branch string) (string, bool) {
	repo, ok := m.RepositoryURL()
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(repo, "/") + "/blob/" + branch + "/", true
}

// DocsURL returns the module's documentation page.
func (m *Manifest) DocsURL() string {
	return "https://pkg.go.dev/" + m.Module
}

// DocsPrefix returns the absolute URL prefix of links within the
// documentation page.
func (m *Manifest) DocsPrefix() string {
	return m.DocsURL() + "/"
}

// Name returns the last element of the module path, the conventional
// project title.
func (m *Manifest) Name() string {
	if i := strings.LastIndexByte(m.Module, '/'); i >= 0 {
		return m.Module[i+1:]
	}
	return m.Module
}
