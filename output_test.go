package bitify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/frgmt0/bitify/imageutil"
)

func TestOutputPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		source  string
		density Density
		want    string
	}{
		{"/photos/cat.jpg", DensityMedium, "cat_Medium_ascii.png"},
		{"dog.png", DensityLow, "dog_Low_ascii.png"},
		{"archive.tar.gz", DensityUltra, "archive.tar_Ultra_ascii.png"},
	}

	for _, tt := range tests {
		got, err := OutputPath(tt.source, tt.density)
		if err != nil {
			t.Errorf("OutputPath(%q) failed: %v", tt.source, err)
			continue
		}
		want := filepath.Join(home, "Bitify", tt.want)
		if got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.source, got, want)
		}
	}
}

func TestSaveGridToPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Bitify", "out.png")

	grid := Grid{{
		{Char: '@', Color: imageutil.RGB{R: 255, G: 255, B: 255}},
		{Char: ' ', Color: imageutil.RGB{}},
	}}

	if err := SaveGridToPNG(grid, path); err != nil {
		t.Fatalf("SaveGridToPNG failed: %v", err)
	}

	// The directory is created on demand and the written file decodes
	// back to the exact rasterized dimensions.
	img, err := imageutil.LoadImage(path)
	if err != nil {
		t.Fatalf("reading saved PNG back failed: %v", err)
	}
	if img.Width() != 2*GlyphWidth || img.Height() != GlyphHeight {
		t.Errorf("saved image is %dx%d, want %dx%d",
			img.Width(), img.Height(), 2*GlyphWidth, GlyphHeight)
	}
}

func TestSaveGridToPNGDirectoryFailure(t *testing.T) {
	dir := t.TempDir()

	// A regular file where the output directory should go.
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	grid := Grid{{{Char: '@', Color: imageutil.RGB{R: 255}}}}
	err := SaveGridToPNG(grid, filepath.Join(blocker, "out.png"))

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want PersistenceError", err)
	}
	if perr.Op != "create directory" {
		t.Errorf("PersistenceError op = %q, want %q", perr.Op, "create directory")
	}
}
