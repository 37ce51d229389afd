package sazan

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ComposeGrid crops every input image with the same rectangle and arranges
// the crops on a single canvas of grid.Cols x grid.Rows cells, left to
// right then top to bottom. Cells beyond the input list stay fully
// transparent, as does the whole canvas background.
func ComposeGrid(images []image.Image, crop Rect, grid Grid) (*image.NRGBA, error) {
	cropped, err := CropAll(images, crop)
	if err != nil {
		return nil, err
	}
	return Combine(cropped, grid)
}

// Combine arranges pre-cropped cells on a grid canvas, row-major. All
// cells must share the dimensions of the first one; a deviating cell
// returns a SizeMismatchError. With no cells at all the cell size
// degenerates to 1x1 and the result is a transparent
// grid.Cols x grid.Rows canvas.
func Combine(cells []*image.NRGBA, grid Grid) (*image.NRGBA, error) {
	cellW, cellH := 1, 1
	if len(cells) > 0 {
		cellW = cells[0].Bounds().Dx()
		cellH = cells[0].Bounds().Dy()
	}

	canvas := imaging.New(cellW*grid.Cols, cellH*grid.Rows, color.NRGBA{})

	for i := 0; i < grid.Cells() && i < len(cells); i++ {
		cell := cells[i]
		if cell.Bounds().Dx() != cellW || cell.Bounds().Dy() != cellH {
			return nil, &SizeMismatchError{
				Index: i,
				GotW:  cell.Bounds().Dx(),
				GotH:  cell.Bounds().Dy(),
				WantW: cellW,
				WantH: cellH,
			}
		}
		x := (i % grid.Cols) * cellW
		y := (i / grid.Cols) * cellH
		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}

	// Cells past len(cells) keep the transparent background.
	return canvas, nil
}
