package bitify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGlyphTableFromTTFMissingFile(t *testing.T) {
	if _, err := LoadGlyphTableFromTTF("/nonexistent/font.ttf"); err == nil {
		t.Error("expected an error for a missing font file")
	}
}

func TestLoadGlyphTableFromTTFInvalidFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadGlyphTableFromTTF(path); err == nil {
		t.Error("expected a parse error for a bogus font file")
	}
}
