// Package lensicon draws the magnifying-lens icon used by the PDS Lens
// browser extension and writes it at the sizes an extension manifest needs.
//
// # Quick Start
//
//	import "github.com/pdslens/lensicon"
//
//	// Write icon16.png, icon48.png and icon128.png into the current directory
//	set := lensicon.NewIconSet(".", os.Stdout)
//	if err := set.Generate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or render a single size in memory
//	img, err := lensicon.NewRenderer().Render(48)
//
// # Glyph
//
// The icon is a white circle outline with a short diagonal handle toward the
// lower right, on a solid #0066CC square. Every measurement is derived from
// the icon size by [NewGeometry], so the glyph keeps its proportions at
// 16, 48 and 128 pixels. Outline thickness is [StrokeWidth].
//
// Drawing is done with the software rasterizer of github.com/gogpu/gg.
//
// # Errors
//
// Before anything is drawn, [CheckDependencies] confirms that an encoder
// exists for each output path. A failure is reported as a
// [*MissingDependencyError] and no file is written.
package lensicon
