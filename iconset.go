package lensicon

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
)

// Sizes are the icon edge lengths required by a browser extension manifest.
var Sizes = []int{16, 48, 128}

// FileName returns the output name for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// IconSet renders a fixed list of icon sizes into one directory.
type IconSet struct {
	Dir      string
	Sizes    []int
	Renderer *Renderer

	// Name maps a size to a file name. Nil means FileName.
	Name func(size int) string

	// Out receives one confirmation line per file. Nil discards them.
	Out io.Writer
}

// NewIconSet returns an IconSet for the standard sizes written into dir.
func NewIconSet(dir string, out io.Writer, opts ...RendererOption) *IconSet {
	return &IconSet{
		Dir:      dir,
		Sizes:    slices.Clone(Sizes),
		Renderer: NewRenderer(opts...),
		Out:      out,
	}
}

// Paths returns the output path for every size, in order.
func (s *IconSet) Paths() []string {
	name := s.Name
	if name == nil {
		name = FileName
	}
	paths := make([]string, len(s.Sizes))
	for i, size := range s.Sizes {
		paths[i] = filepath.Join(s.Dir, name(size))
	}
	return paths
}

// Generate checks that every output can be encoded, then renders and writes
// each size in turn. When the check fails no file is written and the
// returned error matches ErrMissingDependency. Any other error stops the
// run at the failing size.
func (s *IconSet) Generate() error {
	paths := s.Paths()
	if err := CheckDependencies(paths...); err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = io.Discard
	}

	for i, size := range s.Sizes {
		if err := s.Renderer.renderFile(size, paths[i]); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", filepath.Base(paths[i]))
	}
	fmt.Fprintln(out, "\nAll icons generated successfully!")
	return nil
}
