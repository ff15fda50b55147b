// Package draw implements scan conversion of basic shapes on any pixel store.
//
// Every function plots through the destination's Set method; pixels that fall
// outside of the destination are dropped by the destination itself, so shapes
// may be partially or completely off-screen.
package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// Drawer is an alias for [golang.org/x/image/draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [golang.org/x/image/draw.Image].
type Image = draw.Image

// Op is an alias for [golang.org/x/image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = draw.Over

	// Src specifies ``src in mask''.
	Src Op = draw.Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Scale draws all of src scaled into r using nearest neighbour sampling. Each
// sampled color is reduced by the destination's color model.
func Scale(dst Image, r image.Rectangle, src image.Image) {
	draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}
