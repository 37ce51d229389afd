package loader

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestImage(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Failed to write test image %s: %v", path, err)
	}
}

func TestLoadAllSortsPaths(t *testing.T) {
	dir := t.TempDir()

	// Each file gets a distinct red value so the load order is visible.
	paths := []string{
		filepath.Join(dir, "c.png"),
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
	}
	writeTestImage(t, paths[0], color.NRGBA{R: 30, A: 255})
	writeTestImage(t, paths[1], color.NRGBA{R: 10, A: 255})
	writeTestImage(t, paths[2], color.NRGBA{R: 20, A: 255})

	images, err := LoadAll(paths)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("Got %d images, want 3", len(images))
	}

	// Lexicographic order: a.png, b.png, c.png.
	for i, wantR := range []uint8{10, 20, 30} {
		nrgba := imaging.Clone(images[i])
		if got := nrgba.NRGBAAt(0, 0).R; got != wantR {
			t.Errorf("Image %d has R=%d, want %d (files not processed in sorted order)", i, got, wantR)
		}
	}
}

func TestLoadAllDoesNotModifyInput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "b.png")
	b := filepath.Join(dir, "a.png")
	writeTestImage(t, a, color.NRGBA{A: 255})
	writeTestImage(t, b, color.NRGBA{A: 255})

	paths := []string{a, b}
	if _, err := LoadAll(paths); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if paths[0] != a || paths[1] != b {
		t.Error("LoadAll reordered the caller's slice")
	}
}

func TestLoadAllDecodeError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.png")
	bad := filepath.Join(dir, "b.png")
	writeTestImage(t, good, color.NRGBA{A: 255})
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAll([]string{good, bad}); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	if _, err := LoadAll([]string{filepath.Join(t.TempDir(), "missing.png")}); err == nil {
		t.Error("Expected error for missing file")
	}
}
