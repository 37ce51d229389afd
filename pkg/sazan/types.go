package sazan

import "fmt"

// Rect is a crop rectangle: size plus top-left offset in source
// image coordinates (origin top-left, x rightward, y downward).
type Rect struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Grid describes a montage or tiling layout.
type Grid struct {
	Cols int
	Rows int
}

// Cells returns the total number of grid cells.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// BoundsError reports a crop rectangle that exceeds the source image.
type BoundsError struct {
	Rect        Rect
	ImageWidth  int
	ImageHeight int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("crop rect %dx%d+%d+%d outside image bounds %dx%d",
		e.Rect.Width, e.Rect.Height, e.Rect.X, e.Rect.Y, e.ImageWidth, e.ImageHeight)
}

// SizeMismatchError reports a cropped cell whose dimensions differ from
// the grid cell size. It indicates the caller fed images that were not
// all cropped with the same rectangle.
type SizeMismatchError struct {
	Index        int
	GotW, GotH   int
	WantW, WantH int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("cropped image %d is %dx%d, grid cell is %dx%d",
		e.Index, e.GotW, e.GotH, e.WantW, e.WantH)
}

// BufferLengthError reports a raw RGBA buffer whose length does not match
// the claimed dimensions.
type BufferLengthError struct {
	Got  int
	Want int
}

func (e *BufferLengthError) Error() string {
	return fmt.Sprintf("rgba buffer is %d bytes, expected %d", e.Got, e.Want)
}
