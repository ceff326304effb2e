// Package render draws raster quicklooks as braille microgrids for the
// terminal.
package render

import (
	"math"
	"strings"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// Microgrid renders byte samples as braille cells, cols cells wide, with
// the vertical extent scaled to keep the raster's proportions. A sample
// at or above level switches its dot on. Sampling is nearest neighbor.
func Microgrid(samples []uint8, width, height, cols int, level uint8) string {
	if width <= 0 || height <= 0 || cols <= 0 || len(samples) < width*height {
		return ""
	}

	microW := cols * 2
	if microW > width {
		microW = width
		cols = (microW + 1) / 2
	}
	microH := int(math.Round(float64(microW) * float64(height) / float64(width)))
	if microH < 1 {
		microH = 1
	}
	rows := (microH + 3) / 4

	buf := newBrailleBuf(cols, rows)
	for my := 0; my < microH; my++ {
		sy := my * height / microH
		for mx := 0; mx < microW; mx++ {
			sx := mx * width / microW
			if samples[sy*width+sx] >= level {
				buf.setPixel(mx, my)
			}
		}
	}

	return strings.Join(buf.toLines(), "\n")
}
