package bitify

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// LoadGlyphTableFromTTF pre-renders a TrueType font into an 8x12 glyph
// table covering every character reachable from any density preset.
// The resulting table can replace the compiled-in one via
// WithGlyphTable. Fonts designed for terminal use work best at this
// cell size.
func LoadGlyphTableFromTTF(path string) (*GlyphTable, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	ttfFont, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	// The extreme ramp is a superset of every other preset's ramp.
	glyphs := make(map[rune]GlyphBitmap)
	for _, r := range DensityExtreme.Ramp() {
		glyphs[r] = renderGlyphToBitmap(ttfFont, r)
	}
	// The blank character stays all-off regardless of how the font
	// renders a space.
	glyphs[' '] = GlyphBitmap{}

	return NewGlyphTable(glyphs), nil
}

// renderGlyphToBitmap rasterizes a single rune into the fixed glyph
// cell. The glyph is drawn anti-aliased into an alpha image and then
// thresholded at 25% coverage; the low threshold keeps thin strokes
// and serifs from dropping out of the bitmap.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Baseline from font metrics, converted out of 26.6 fixed point.
	// Centering on the ascent/descent span keeps descenders inside
	// the cell.
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	baselineY := (GlyphHeight + ascent - descent) / 2

	pt := freetype.Pt(0, baselineY)
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		return GlyphBitmap{}
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}

	return bitmap
}
