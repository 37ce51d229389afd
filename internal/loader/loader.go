package loader

import (
	"fmt"
	"image"
	"os"
	"sort"

	"github.com/disintegration/imaging"
)

// LoadAll reads every path into memory and returns the decoded images.
// Paths are sorted lexicographically first: grid position and archive
// index are purely positional, so the processing order has to be
// deterministic no matter how the shell expanded the arguments.
//
// The first file that cannot be opened or decoded aborts the whole load.
func LoadAll(paths []string) ([]image.Image, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	images := make([]image.Image, 0, len(sorted))
	for _, path := range sorted {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open image %q: %w", path, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// SaveImage writes img to path, with the format inferred from the
// file extension.
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %q: %w", path, err)
	}
	return nil
}

// WriteFile writes raw bytes (e.g. a finished archive) to path.
func WriteFile(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
