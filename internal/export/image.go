// Package export moves canvases in and out of the process: decoding input
// images from files or standard input and encoding the result as PNG.
package export

import (
	"bufio"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/go-errors/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pie/internal/raster"
)

// Open decodes the image file at path into a buffer.
func Open(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	defer f.Close()
	buf, err := Read(f)
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return buf, nil
}

// Read decodes an image in any registered format from r and converts it to
// a 4-channel RGBA buffer.
func Read(r io.Reader) (*raster.Buffer, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.Errorf("decode image: %s image has zero size", format)
	}
	buf, err := raster.FromImage(img)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Save writes buf as PNG to path, creating or truncating it.
func Save(buf *raster.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if err := Write(buf, f); err != nil {
		f.Close()
		return errors.WrapPrefix(err, path, 0)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

// Write encodes buf as PNG to w.
func Write(buf *raster.Buffer, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, buf.Image()); err != nil {
		return errors.Errorf("encode png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
