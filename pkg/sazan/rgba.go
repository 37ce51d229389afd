package sazan

import "image"

// FromRGBABytes builds an image from a flat, non-premultiplied RGBA byte
// buffer as handed over by host embeddings (e.g. browser ImageData). The
// buffer length must be exactly width*height*4; anything else returns a
// BufferLengthError before any image is constructed.
func FromRGBABytes(buf []byte, width, height int) (*image.NRGBA, error) {
	want := width * height * 4
	if width <= 0 || height <= 0 || len(buf) != want {
		return nil, &BufferLengthError{Got: len(buf), Want: want}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, buf)
	return img, nil
}

// SplitRGBABytes slices a concatenation of count equally sized RGBA
// buffers into individual images. Validation happens here, at the adapter
// boundary, so the composition core never sees a malformed buffer.
func SplitRGBABytes(buf []byte, width, height, count int) ([]image.Image, error) {
	single := width * height * 4
	want := single * count
	if width <= 0 || height <= 0 || count < 0 || len(buf) != want {
		return nil, &BufferLengthError{Got: len(buf), Want: want}
	}

	images := make([]image.Image, 0, count)
	for i := 0; i < count; i++ {
		img, err := FromRGBABytes(buf[i*single:(i+1)*single], width, height)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
