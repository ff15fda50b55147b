package draw

import (
	"image/color"
)

// Pixel plots a single pixel.
func Pixel(dst Image, x, y int, c color.Color) {
	dst.Set(x, y, c)
}

// Line draws a line between (x0,y0) and (x1,y1), both end points included.
func Line(dst Image, x0, y0, x1, y1 int, c color.Color) {
	bresenham(dst, x0, y0, x1, y1, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := x; i < x+w; i++ {
		dst.Set(i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for j := y; j < y+h; j++ {
		dst.Set(x, j, c)
	}
}

// Rectangle draws the outline of the w by h rectangle at (x,y).
func Rectangle(dst Image, x, y, w, h int, c color.Color) {
	for i := x; i < x+w; i++ {
		dst.Set(i, y, c)
		dst.Set(i, y+h-1, c)
	}
	for j := y; j < y+h; j++ {
		dst.Set(x, j, c)
		dst.Set(x+w-1, j, c)
	}
}

// Box draws a filled rectangle covering [x,x+w) × [y,y+h).
func Box(dst Image, x, y, w, h int, c color.Color) {
	for i := x; i < x+w; i++ {
		VerticalLine(dst, i, y, h, c)
	}
}

// Circle draws a circle with radius r around (x0,y0).
func Circle(dst Image, x0, y0, r int, c color.Color) {
	if r < 0 {
		r = -r
	}

	dst.Set(x0, y0+r, c)
	dst.Set(x0, y0-r, c)
	dst.Set(x0+r, y0, c)
	dst.Set(x0-r, y0, c)

	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		dst.Set(x0+x, y0+y, c)
		dst.Set(x0-x, y0+y, c)
		dst.Set(x0+x, y0-y, c)
		dst.Set(x0-x, y0-y, c)

		dst.Set(x0+y, y0+x, c)
		dst.Set(x0-y, y0+x, c)
		dst.Set(x0+y, y0-x, c)
		dst.Set(x0-y, y0-x, c)
	}
}

// FilledCircle draws a filled circle with radius r around (x0,y0).
func FilledCircle(dst Image, x0, y0, r int, c color.Color) {
	if r < 0 {
		r = -r
	}

	VerticalLine(dst, x0, y0-r, 2*r+1, c)

	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		VerticalLine(dst, x0+x, y0-y, 2*y+1, c)
		VerticalLine(dst, x0-x, y0-y, 2*y+1, c)
		VerticalLine(dst, x0+y, y0-x, 2*x+1, c)
		VerticalLine(dst, x0-y, y0-x, 2*x+1, c)
	}
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, x, y, w, h, radius int, c color.Color) {
	r := clampRadius(w, h, radius)
	HorizontalLine(dst, x+r, y, w-2*r, c)
	HorizontalLine(dst, x+r, y+h-1, w-2*r, c)
	VerticalLine(dst, x, y+r, h-2*r, c)
	VerticalLine(dst, x+w-1, y+r, h-2*r, c)
	roundedCorner(dst, x+0+r+0, y+0+r+0, r, 1, c)
	roundedCorner(dst, x+w-r-1, y+0+r+0, r, 2, c)
	roundedCorner(dst, x+w-r-1, y+h-r-1, r, 4, c)
	roundedCorner(dst, x+0+r+0, y+h-r-1, r, 8, c)
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, x, y, w, h, radius int, c color.Color) {
	r := clampRadius(w, h, radius)
	Box(dst, x+r, y, w-2*r, h, c)
	filledRoundedCorner(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	filledRoundedCorner(dst, x+r, y+r, r, 2, h-2*r-1, c)
}

// clampRadius keeps the corners from overlapping.
func clampRadius(w, h, r int) int {
	if m := min(w, h) / 2; r > m {
		r = m
	}
	if r < 0 {
		r = 0
	}
	return r
}

func roundedCorner(dst Image, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		}
	}
}

func filledRoundedCorner(dst Image, x0, y0, radius, side, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		// right side
		if side&1 != 0 {
			VerticalLine(dst, x0+x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0+y, y0-x, 2*x+1+delta, c)
		}
		// left side
		if side&2 != 0 {
			VerticalLine(dst, x0-x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// Bitmap plots the set bits of a w by h bitmap at (x,y). The bitmap uses the
// page layout of the frame buffer: column-major with 8 rows per byte and the
// top row in the least significant bit. Clear bits are left untouched.
func Bitmap(dst Image, x, y int, bitmap []byte, w, h int, c color.Color) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			pos := i + (j/8)*w
			if pos >= len(bitmap) {
				continue
			}
			if bitmap[pos]&(1<<uint(j%8)) != 0 {
				dst.Set(x+i, y+j, c)
			}
		}
	}
}

// bresenham steps along the major axis, transposing steep lines so that x is
// always the major axis, and accumulates an error term for the minor axis.
func bresenham(dst Image, x0, y0, x1, y1 int, c color.Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	var (
		dx    = x1 - x0
		dy    = abs(y1 - y0)
		e     = dx / 2
		ystep = -1
	)
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			dst.Set(y0, x0, c)
		} else {
			dst.Set(x0, y0, c)
		}
		e -= dy
		if e < 0 {
			y0 += ystep
			e += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
