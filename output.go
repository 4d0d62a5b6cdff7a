package bitify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/frgmt0/bitify/imageutil"
)

// outputDirName is the directory under the user's home where rendered
// images are collected.
const outputDirName = "Bitify"

// OutputPath returns the default save location for a rendered image:
// <home>/Bitify/<source basename>_<Density>_ascii.png. Failure to
// resolve the home directory is a PersistenceError.
func OutputPath(sourcePath string, density Density) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &PersistenceError{
			Op:  "resolve home directory",
			Err: err,
		}
	}

	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		stem = "image"
	}

	name := fmt.Sprintf("%s_%s_ascii.png", stem, density)
	return filepath.Join(home, outputDirName, name), nil
}

// SaveGridToPNG rasterizes a grid and writes it to path, creating the
// parent directory if absent. Directory and write failures are
// reported as PersistenceError so callers can tell them apart from
// decode failures and downgrade them to warnings.
func SaveGridToPNG(grid Grid, path string, opts ...RasterizerOption) error {
	img := NewRasterizer(opts...).Render(grid)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{
			Op:   "create directory",
			Path: dir,
			Err:  err,
		}
	}

	if err := imageutil.SavePNG(img.RGBA, path); err != nil {
		return &PersistenceError{
			Op:   "write image",
			Path: path,
			Err:  err,
		}
	}

	return nil
}
