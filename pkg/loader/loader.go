package loader

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		log: logger.With(zap.String("via", "loader")),
		// options
		autoOrientation: false,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader reads and decodes image files from a filesystem.
type Loader struct {
	fs  afero.Fs
	log *zap.Logger
	// options
	autoOrientation bool
}

// Load decodes the whole image at path into memory. The returned error keeps
// the cause from the filesystem or the decoder.
func (l *Loader) Load(path string) (image.Image, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image failed")
	}

	defer func() {
		_ = f.Close()
	}()

	img, err := imaging.Decode(f, imaging.AutoOrientation(l.autoOrientation))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s failed", path)
	}

	log := l.log.With(
		zap.String("path", path),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	)
	if fi, err := f.Stat(); err == nil {
		log = log.With(zap.String("size", bytesize.New(float64(fi.Size())).String()))
	}
	log.Debug("decoded")

	return img, nil
}
