package sazan

import (
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts the region [r.X, r.X+r.Width) x [r.Y, r.Y+r.Height) of img
// as a new NRGBA image. The rectangle must lie entirely inside the source;
// a rect that sticks out returns a BoundsError rather than being clamped.
// Pixels are copied as-is, no resampling.
func Crop(img image.Image, r Rect) (*image.NRGBA, error) {
	bounds := img.Bounds()

	if r.Width < 0 || r.Height < 0 || r.X < 0 || r.Y < 0 ||
		r.X+r.Width > bounds.Dx() || r.Y+r.Height > bounds.Dy() {
		return nil, &BoundsError{
			Rect:        r,
			ImageWidth:  bounds.Dx(),
			ImageHeight: bounds.Dy(),
		}
	}

	// imaging.Crop would silently intersect with the source bounds,
	// hence the explicit check above.
	cropRect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).
		Add(bounds.Min)
	return imaging.Crop(img, cropRect), nil
}

// CropAll applies the same rectangle to every image, in input order.
// The first failure aborts the whole batch.
func CropAll(images []image.Image, r Rect) ([]*image.NRGBA, error) {
	cropped := make([]*image.NRGBA, 0, len(images))
	for _, img := range images {
		c, err := Crop(img, r)
		if err != nil {
			return nil, err
		}
		cropped = append(cropped, c)
	}
	return cropped, nil
}
