// Package fsutil provides file system utility functions: the directory
// listing and filename conventions the module tree walker is built on.
package fsutil

import (
	"os"
	"strings"
)

const (
	// Ext is the file extension that marks a loadable module file.
	Ext = ".hcl"

	// EntryPointName is the normalized name of a directory's
	// entry-point module. A directory containing "default.hcl" is
	// itself a loadable module.
	EntryPointName = "default"

	// MarkerSkipTree erases the directory and its whole subtree from
	// the namespace. Presence-only; content is ignored.
	MarkerSkipTree = ".skip-tree"

	// MarkerSkipSubtree keeps the directory's own value but drops all
	// subdirectory contributions. Presence-only; content is ignored.
	MarkerSkipSubtree = ".skip-subtree"
)

// Entry is a single visible directory entry.
type Entry struct {
	Name  string
	IsDir bool
}

// ListVisible enumerates the visible entries of dir. Hidden entries
// (dot-prefixed) are excluded, with the two traversal markers as the
// only exceptions: they must stay detectable despite following the
// hidden-file convention. Errors from reading the directory propagate
// unchanged.
func ListVisible(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		name := d.Name()
		if strings.HasPrefix(name, ".") && name != MarkerSkipTree && name != MarkerSkipSubtree {
			continue
		}
		entries = append(entries, Entry{Name: name, IsDir: d.IsDir()})
	}
	return entries, nil
}

// ModuleName returns the logical module name for a file name: the name
// with Ext stripped. The second result is false when the file does not
// use the module extension (or has nothing before it), letting callers
// tell loadable modules apart from unrelated files.
func ModuleName(filename string) (string, bool) {
	if !strings.HasSuffix(filename, Ext) || len(filename) == len(Ext) {
		return "", false
	}
	return strings.TrimSuffix(filename, Ext), true
}
