package bitmap

import (
	"image"
)

// Encode packs every pixel of src in scan order, top row first.
func Encode(src image.Image) []uint32 {
	b := src.Bounds()
	d := NewRGB888(b)

	if n, ok := src.(*image.NRGBA); ok {
		encodeNRGBA(d, n)
		return d.pixels
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d.Set(x, y, src.At(x, y))
		}
	}

	return d.pixels
}

func encodeNRGBA(d *RGB888, src *image.NRGBA) {
	b := src.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+3]
			d.pixels[i] = Pack(p[0], p[1], p[2])
			i++
		}
	}
}
