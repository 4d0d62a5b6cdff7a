package bitify

import (
	"github.com/frgmt0/bitify/imageutil"
)

// Rasterizer renders a character grid into a bitmap image using a
// glyph table. The zero configuration uses the compiled-in 8x12 table;
// a table built from a TTF font can be swapped in via WithGlyphTable.
type Rasterizer struct {
	table *GlyphTable
}

// RasterizerOption is a functional option for configuring a Rasterizer.
type RasterizerOption func(*Rasterizer)

// NewRasterizer creates a new Rasterizer with the given options.
func NewRasterizer(opts ...RasterizerOption) *Rasterizer {
	rz := &Rasterizer{
		table: BuiltinGlyphTable(),
	}
	for _, opt := range opts {
		opt(rz)
	}
	return rz
}

// WithGlyphTable sets the glyph table used for rendering.
func WithGlyphTable(table *GlyphTable) RasterizerOption {
	return func(rz *Rasterizer) {
		if table != nil {
			rz.table = table
		}
	}
}

// Render rasterizes a grid into an image of exactly
// gridWidth*GlyphWidth x gridHeight*GlyphHeight pixels. The image
// starts fully black; each glyph's ink sub-pixels are painted in the
// cell's color and off sub-pixels are left untouched.
func (rz *Rasterizer) Render(grid Grid) *imageutil.RGBAImage {
	imgWidth := grid.Width() * GlyphWidth
	imgHeight := grid.Height() * GlyphHeight
	img := imageutil.NewBlackImage(imgWidth, imgHeight)

	for r, row := range grid {
		for c, cell := range row {
			rz.drawGlyph(img, cell, c*GlyphWidth, r*GlyphHeight)
		}
	}

	return img
}

// drawGlyph paints one cell's glyph at the given pixel origin. Any
// sub-pixel falling outside the image is skipped; that cannot happen
// when the image came from Render, but guards against a glyph-size or
// grid mismatch on caller-supplied images.
func (rz *Rasterizer) drawGlyph(img *imageutil.RGBAImage, cell Cell, originX, originY int) {
	glyph := rz.table.Glyph(cell.Char)
	width, height := img.Width(), img.Height()

	for py := 0; py < GlyphHeight; py++ {
		if glyph[py] == 0 {
			continue
		}
		for px := 0; px < GlyphWidth; px++ {
			if !glyph.Bit(px, py) {
				continue
			}
			x, y := originX+px, originY+py
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			img.SetRGB(x, y, cell.Color)
		}
	}
}
