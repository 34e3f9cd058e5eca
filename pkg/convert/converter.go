package convert

import (
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"imagedata/pkg/bitmap"
	"imagedata/pkg/literal"
	"imagedata/pkg/loader"
)

func New(l *loader.Loader, logger *zap.Logger) *Converter {
	return &Converter{
		loader: l,
		log:    logger.With(zap.String("via", "converter")),
	}
}

// Converter turns an image file into a packed pixel literal.
type Converter struct {
	loader *loader.Loader
	log    *zap.Logger
}

// Pixels returns one packed value per pixel of the image at path, in scan
// order. Alpha and palette indirection are dropped.
func (c *Converter) Pixels(path string) ([]uint32, error) {
	img, err := c.loader.Load(path)
	if err != nil {
		return nil, err
	}

	px := bitmap.Encode(imaging.Clone(img))

	c.log.With(zap.String("path", path), zap.Int("pixels", len(px))).Debug("packed")
	return px, nil
}

// Convert writes the literal for the image at path to w. Nothing is written
// unless the image decoded completely.
func (c *Converter) Convert(path string, w io.Writer) error {
	px, err := c.Pixels(path)
	if err != nil {
		return err
	}

	if err := literal.Write(w, px); err != nil {
		return errors.Wrap(err, "write literal failed")
	}

	return nil
}
