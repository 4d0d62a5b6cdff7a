package bitify

import (
	"fmt"
	"strings"
)

// Density selects one of the fixed character palettes used to quantize
// brightness. Each preset carries an ordered ramp of characters from
// blank to dense, and a default output width in characters used when
// the caller has not chosen one.
type Density int

const (
	DensityLow Density = iota
	DensityMedium
	DensityHigh
	DensityUltra
	DensityExtreme
)

// The ramps are ordered by increasing visual density; the first entry
// is always the blank character so zero-brightness cells render empty.
const (
	lowRamp    = " .:+#@"
	mediumRamp = " .:-=+*#%@"
	highRamp   = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/" +
		"tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@"
	ultraRamp   = highRamp + "$"
	extremeRamp = ultraRamp + "AGHKPRSTVgsyeFDN2345679E"
)

var densityRamps = map[Density][]rune{
	DensityLow:     []rune(lowRamp),
	DensityMedium:  []rune(mediumRamp),
	DensityHigh:    []rune(highRamp),
	DensityUltra:   []rune(ultraRamp),
	DensityExtreme: []rune(extremeRamp),
}

var densityDefaultWidths = map[Density]int{
	DensityLow:     40,
	DensityMedium:  80,
	DensityHigh:    120,
	DensityUltra:   150,
	DensityExtreme: 200,
}

// ParseDensity parses a density preset name. Matching is
// case-insensitive; unknown names are an error.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(s) {
	case "low":
		return DensityLow, nil
	case "medium":
		return DensityMedium, nil
	case "high":
		return DensityHigh, nil
	case "ultra":
		return DensityUltra, nil
	case "extreme":
		return DensityExtreme, nil
	default:
		return 0, fmt.Errorf(
			"invalid density %q, options are low, medium, high,"+
				" ultra, or extreme", s)
	}
}

// Ramp returns the preset's character ramp, ordered from the blank
// character to the visually densest one. The returned slice is shared;
// callers must not modify it.
func (d Density) Ramp() []rune {
	if ramp, ok := densityRamps[d]; ok {
		return ramp
	}
	return densityRamps[DensityMedium]
}

// DefaultWidth returns the preset's default output width in characters.
func (d Density) DefaultWidth() int {
	if w, ok := densityDefaultWidths[d]; ok {
		return w
	}
	return densityDefaultWidths[DensityMedium]
}

// String returns the preset name as used in output filenames.
func (d Density) String() string {
	switch d {
	case DensityLow:
		return "Low"
	case DensityMedium:
		return "Medium"
	case DensityHigh:
		return "High"
	case DensityUltra:
		return "Ultra"
	case DensityExtreme:
		return "Extreme"
	default:
		return fmt.Sprintf("Density(%d)", int(d))
	}
}
