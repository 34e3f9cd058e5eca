package loader

type Option func(l *Loader)

// WithAutoOrientation rotates and flips JPEG images according to their EXIF
// orientation tag before the pixels are handed out.
func WithAutoOrientation(on bool) Option {
	return func(l *Loader) {
		l.autoOrientation = on
	}
}
