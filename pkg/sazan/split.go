package sazan

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// splitWorkers bounds the tile encode pool.
const splitWorkers = 8

// TileToArchive cuts a grid.Cols x grid.Rows raster of tileW x tileH tiles
// out of every input image, starting at (offsetX, offsetY), PNG-encodes
// each tile and packages all of them into a single ZIP archive.
//
// Entries are named {prefix}_{img:02d}_{row:02d}_{col:02d}.png and appear
// in image, then row, then col order. The container uses the Store method
// since every tile is already PNG-compressed.
//
// Any out-of-bounds tile or encode failure aborts the whole operation;
// no partial archive is returned.
func TileToArchive(images []image.Image, tileW, tileH, offsetX, offsetY int, grid Grid, prefix string) ([]byte, error) {
	total := len(images) * grid.Cells()
	encoded := make([][]byte, total)
	errs := make([]error, total)

	// Tiles are independent, so crop+encode runs on a worker pool.
	// The archive itself is written afterwards in index order, keeping
	// the output deterministic.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < splitWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				encoded[idx], errs[idx] = encodeTile(images, tileW, tileH, offsetX, offsetY, grid, idx)
			}
		}()
	}
	for idx := 0; idx < total; idx++ {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for idx := 0; idx < total; idx++ {
		imgIdx := idx / grid.Cells()
		row := (idx % grid.Cells()) / grid.Cols
		col := idx % grid.Cols

		name := fmt.Sprintf("%s_%02d_%02d_%02d.png", prefix, imgIdx, row, col)
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Store,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if _, err := w.Write(encoded[idx]); err != nil {
			return nil, fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}

// encodeTile crops and PNG-encodes the tile at the given flat index.
func encodeTile(images []image.Image, tileW, tileH, offsetX, offsetY int, grid Grid, idx int) ([]byte, error) {
	imgIdx := idx / grid.Cells()
	row := (idx % grid.Cells()) / grid.Cols
	col := idx % grid.Cols

	rect := Rect{
		Width:  tileW,
		Height: tileH,
		X:      offsetX + col*tileW,
		Y:      offsetY + row*tileH,
	}
	tile, err := Crop(images[imgIdx], rect)
	if err != nil {
		return nil, fmt.Errorf("image %d tile %d,%d: %w", imgIdx, row, col, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, tile, imaging.PNG); err != nil {
		return nil, fmt.Errorf("image %d tile %d,%d: failed to encode: %w", imgIdx, row, col, err)
	}
	return buf.Bytes(), nil
}
