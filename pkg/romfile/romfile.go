// Package romfile loads program images from disk, transparently
// decompressing gzip, zip and 7z archives by file extension.
package romfile

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads the given file and returns its contents. Archives are
// recognized by extension (.gz, .zip, .7z) and the contained image is
// returned instead; zip and 7z archives are expected to hold the image
// as their first entry. Anything else is returned as is.
func Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("romfile: %w", err)
		}
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("romfile: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("romfile: %s: empty archive", filename)
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("romfile: %w", err)
		}
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("romfile: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("romfile: %s: empty archive", filename)
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("romfile: %w", err)
		}
	default:
		return data, nil
	}

	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("romfile: %w", err)
	}
	return data, nil
}
