package bitify

import (
	"testing"
)

func TestDensityRampInvariants(t *testing.T) {
	presets := []Density{
		DensityLow, DensityMedium, DensityHigh, DensityUltra, DensityExtreme,
	}

	for _, d := range presets {
		ramp := d.Ramp()
		if len(ramp) < 2 {
			t.Errorf("%s: ramp has %d chars, want at least 2", d, len(ramp))
		}
		if ramp[0] != ' ' {
			t.Errorf("%s: ramp starts with %q, want blank", d, ramp[0])
		}
		if d.DefaultWidth() <= 0 {
			t.Errorf("%s: default width %d is not positive", d, d.DefaultWidth())
		}
	}
}

func TestDensityRampSizes(t *testing.T) {
	tests := []struct {
		density Density
		chars   int
		width   int
	}{
		{DensityLow, 6, 40},
		{DensityMedium, 10, 80},
		{DensityHigh, 69, 120},
		{DensityUltra, 70, 150},
		{DensityExtreme, 94, 200},
	}

	for _, tt := range tests {
		if got := len(tt.density.Ramp()); got != tt.chars {
			t.Errorf("%s: ramp has %d chars, want %d",
				tt.density, got, tt.chars)
		}
		if got := tt.density.DefaultWidth(); got != tt.width {
			t.Errorf("%s: default width %d, want %d",
				tt.density, got, tt.width)
		}
	}
}

func TestDensityRampNesting(t *testing.T) {
	// Ultra extends high, extreme extends ultra; the TTF glyph loader
	// relies on extreme being a superset of every other ramp.
	high, ultra, extreme := DensityHigh.Ramp(), DensityUltra.Ramp(), DensityExtreme.Ramp()

	for i, r := range high {
		if ultra[i] != r {
			t.Fatalf("ultra[%d] = %q, want %q (high prefix)", i, ultra[i], r)
		}
	}
	for i, r := range ultra {
		if extreme[i] != r {
			t.Fatalf("extreme[%d] = %q, want %q (ultra prefix)", i, extreme[i], r)
		}
	}
}

func TestParseDensity(t *testing.T) {
	tests := []struct {
		input string
		want  Density
	}{
		{"low", DensityLow},
		{"medium", DensityMedium},
		{"high", DensityHigh},
		{"ultra", DensityUltra},
		{"extreme", DensityExtreme},
		{"LOW", DensityLow},
		{"Extreme", DensityExtreme},
	}

	for _, tt := range tests {
		got, err := ParseDensity(tt.input)
		if err != nil {
			t.Errorf("ParseDensity(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDensity(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseDensityRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "max", "mediu", "med ium"} {
		if _, err := ParseDensity(input); err == nil {
			t.Errorf("ParseDensity(%q) should fail", input)
		}
	}
}

func TestDensityString(t *testing.T) {
	if got := DensityLow.String(); got != "Low" {
		t.Errorf("DensityLow.String() = %q, want %q", got, "Low")
	}
	if got := DensityExtreme.String(); got != "Extreme" {
		t.Errorf("DensityExtreme.String() = %q, want %q", got, "Extreme")
	}
}
