package imageutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")

	img := CreateGradientImage(16, 8)
	if err := SavePNG(img.RGBA, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Width() != 16 || loaded.Height() != 8 {
		t.Errorf("loaded %dx%d, want 16x8", loaded.Width(), loaded.Height())
	}
	// PNG is lossless, so the pixels survive the round trip.
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if loaded.GetRGB(x, y) != img.GetRGB(x, y) {
				t.Fatalf("pixel (%d,%d) changed in round trip", x, y)
			}
		}
	}
}

func TestSaveImageFormatDispatch(t *testing.T) {
	dir := t.TempDir()
	img := CreateSolidImage(4, 4, RGB{R: 255})

	for _, name := range []string{"a.png", "b.jpg", "c.jpeg", "d.gif", "e.out"} {
		path := filepath.Join(dir, name)
		if err := SaveImage(img.RGBA, path); err != nil {
			t.Errorf("SaveImage(%q) failed: %v", name, err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("SaveImage(%q) wrote nothing", name)
		}
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage("/nonexistent/image.png"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("expected a decode error for junk data")
	}
}
