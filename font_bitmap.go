package bitify

const (
	// GlyphWidth and GlyphHeight define the fixed character cell size
	// in sub-pixels. Output images are always exact multiples of these.
	GlyphWidth  = 8
	GlyphHeight = 12
)

// GlyphBitmap represents an 8x12 character cell as one byte per row.
// The most significant bit of each row is the leftmost sub-pixel, so
// the binary literals below read like the glyph they draw.
type GlyphBitmap [GlyphHeight]uint8

// Bit reports whether the sub-pixel at (x, y) is ink. Coordinates
// outside the cell are never ink.
func (g GlyphBitmap) Bit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[y]&(1<<(GlyphWidth-1-x)) != 0
}

// setBit sets the sub-pixel at (x, y). Out-of-cell coordinates are
// ignored.
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	mask := uint8(1) << (GlyphWidth - 1 - x)
	if value {
		g[y] |= mask
	} else {
		g[y] &^= mask
	}
}

// GlyphTable is an immutable many-to-one mapping from characters to
// glyph bitmaps. Characters with similar ink coverage intentionally
// share one shape: the raster output preserves visual weight, not
// letterform fidelity. Unmapped characters resolve to the blank glyph.
type GlyphTable struct {
	glyphs map[rune]GlyphBitmap
}

// NewGlyphTable creates a glyph table from an explicit mapping. The
// map is copied; later changes to the argument do not affect the table.
func NewGlyphTable(glyphs map[rune]GlyphBitmap) *GlyphTable {
	copied := make(map[rune]GlyphBitmap, len(glyphs))
	for r, g := range glyphs {
		copied[r] = g
	}
	return &GlyphTable{glyphs: copied}
}

// Glyph returns the bitmap for a character, or the all-off blank glyph
// when the character has no mapping.
func (t *GlyphTable) Glyph(r rune) GlyphBitmap {
	if g, ok := t.glyphs[r]; ok {
		return g
	}
	return glyphSpace
}

// Len returns the number of mapped characters.
func (t *GlyphTable) Len() int { return len(t.glyphs) }

// builtinTable is constructed once at process start and never mutated.
var builtinTable = buildBuiltinTable()

// BuiltinGlyphTable returns the compiled-in glyph table covering every
// character reachable from any density preset.
func BuiltinGlyphTable() *GlyphTable { return builtinTable }

func buildBuiltinTable() *GlyphTable {
	m := make(map[rune]GlyphBitmap)
	add := func(g GlyphBitmap, chars string) {
		for _, r := range chars {
			m[r] = g
		}
	}

	add(glyphSpace, " ")
	add(glyphDot, ".'`,i")
	add(glyphColon, ":\";")
	add(glyphDash, "-")
	add(glyphEquals, "=")
	add(glyphPlus, "+")
	add(glyphAsterisk, "*")
	add(glyphHash, "#")
	add(glyphPercent, "%")
	add(glyphAt, "@")
	add(glyphCaret, "^")
	add(glyphPipe, "Il!1|")
	add(glyphGreater, ">")
	add(glyphLess, "<")
	add(glyphTilde, "~")
	add(glyphUnderscore, "_")
	add(glyphQuestion, "?")
	add(glyphBracketRight, "]}")
	add(glyphBracketLeft, "[{")
	add(glyphParenRight, ")")
	add(glyphParenLeft, "(")
	add(glyphBackslash, "\\")
	add(glyphSlash, "/")
	add(glyphZero, "0")
	add(glyphSmallBlock, "tfjrxnuvczmwqpdbkhao")
	add(glyphMediumBlock, "XYUJCLQOZgsyeFDN2345679E")
	add(glyphLargeBlock, "MWBAGHKPRSTV&8$")

	return &GlyphTable{glyphs: m}
}

// glyphSpace is the blank glyph, also the fallback for unmapped
// characters.
var glyphSpace = GlyphBitmap{}

var glyphDot = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00011000,
	0b00011000,
	0b00000000,
}

var glyphColon = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00011000,
	0b00011000,
	0b00000000,
	0b00000000,
	0b00011000,
	0b00011000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphDash = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b01111110,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphEquals = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b01111110,
	0b00000000,
	0b00000000,
	0b01111110,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphPlus = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00011000,
	0b00011000,
	0b01111110,
	0b01111110,
	0b00011000,
	0b00011000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphAsterisk = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00100100,
	0b00011000,
	0b01111110,
	0b00011000,
	0b00100100,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphHash = GlyphBitmap{
	0b00000000,
	0b00101000,
	0b00101000,
	0b01111110,
	0b00101000,
	0b00101000,
	0b01111110,
	0b00101000,
	0b00101000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphPercent = GlyphBitmap{
	0b00000000,
	0b01100010,
	0b01100100,
	0b00001000,
	0b00010000,
	0b00100000,
	0b01000000,
	0b01001100,
	0b00001100,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphAt = GlyphBitmap{
	0b00111100,
	0b01000010,
	0b01011010,
	0b01100110,
	0b01100110,
	0b01100110,
	0b01011100,
	0b01000000,
	0b00111100,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphCaret = GlyphBitmap{
	0b00000000,
	0b00011000,
	0b00100100,
	0b01000010,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphGreater = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00100000,
	0b00010000,
	0b00001000,
	0b00000100,
	0b00001000,
	0b00010000,
	0b00100000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphLess = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000100,
	0b00001000,
	0b00010000,
	0b00100000,
	0b00010000,
	0b00001000,
	0b00000100,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphTilde = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00110010,
	0b01001100,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphUnderscore = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b11111111,
}

var glyphQuestion = GlyphBitmap{
	0b00000000,
	0b00111100,
	0b01000010,
	0b00000100,
	0b00001000,
	0b00010000,
	0b00010000,
	0b00000000,
	0b00010000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphBracketRight = GlyphBitmap{
	0b01110000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b01110000,
	0b00000000,
	0b00000000,
}

var glyphBracketLeft = GlyphBitmap{
	0b00011100,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00011100,
	0b00000000,
	0b00000000,
}

var glyphParenRight = GlyphBitmap{
	0b00100000,
	0b00010000,
	0b00001000,
	0b00001000,
	0b00001000,
	0b00001000,
	0b00001000,
	0b00001000,
	0b00010000,
	0b00100000,
	0b00000000,
	0b00000000,
}

var glyphParenLeft = GlyphBitmap{
	0b00001000,
	0b00010000,
	0b00100000,
	0b00100000,
	0b00100000,
	0b00100000,
	0b00100000,
	0b00100000,
	0b00010000,
	0b00001000,
	0b00000000,
	0b00000000,
}

var glyphPipe = GlyphBitmap{
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00011000,
	0b00000000,
	0b00000000,
}

var glyphBackslash = GlyphBitmap{
	0b01000000,
	0b01000000,
	0b00100000,
	0b00100000,
	0b00010000,
	0b00010000,
	0b00001000,
	0b00001000,
	0b00000100,
	0b00000100,
	0b00000000,
	0b00000000,
}

var glyphSlash = GlyphBitmap{
	0b00000100,
	0b00000100,
	0b00001000,
	0b00001000,
	0b00010000,
	0b00010000,
	0b00100000,
	0b00100000,
	0b01000000,
	0b01000000,
	0b00000000,
	0b00000000,
}

var glyphZero = GlyphBitmap{
	0b00111100,
	0b01000010,
	0b01000110,
	0b01001010,
	0b01010010,
	0b01100010,
	0b01000010,
	0b00111100,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphSmallBlock = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00111100,
	0b00111100,
	0b00111100,
	0b00111100,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphMediumBlock = GlyphBitmap{
	0b00000000,
	0b00000000,
	0b01111110,
	0b01111110,
	0b01111110,
	0b01111110,
	0b01111110,
	0b01111110,
	0b00000000,
	0b00000000,
	0b00000000,
	0b00000000,
}

var glyphLargeBlock = GlyphBitmap{
	0b00000000,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b11111111,
	0b00000000,
	0b00000000,
}
