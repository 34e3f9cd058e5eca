package bitmap

import (
	"image"
	"image/color"
)

// RGB888Model converts any color to a packed rgb888 value.
var RGB888Model color.Model = rgb888Color{}

func NewRGB888(r image.Rectangle) *RGB888 {
	return &RGB888{
		pixels: make([]uint32, r.Dx()*r.Dy()),
		stride: r.Dx(),
		bounds: r,
	}
}

// RGB888 is an in-memory bitmap where every pixel is one packed uint32,
// laid out in scan order. It implements the draw.Image interface.
type RGB888 struct {
	pixels []uint32
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB888) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB888) ColorModel() color.Model {
	return RGB888Model
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB888) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(d.bounds) {
		return rgb888(0)
	}
	return rgb888(d.pixels[d.offset(x, y)])
}

// Set implements the draw.Image interface.
func (d *RGB888) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(d.bounds) {
		return
	}
	d.pixels[d.offset(x, y)] = uint32(toRGB888(c))
}

// Pixels returns the packed pixels in scan order. The slice is shared with
// the bitmap.
func (d *RGB888) Pixels() []uint32 {
	return d.pixels
}

func (d *RGB888) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + (x - d.bounds.Min.X)
}

// Pack stores the three channels in the low 24 bits:
//
//	bit 31..24    23..16    15..8     7..0
//	    00000000  RRRRRRRR  GGGGGGGG  BBBBBBBB
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack is the inverse of Pack. Bits above 23 are ignored.
func Unpack(v uint32) (r, g, b uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

type rgb888Color struct{}

func (rgb888Color) Convert(c color.Color) color.Color {
	return toRGB888(c)
}

// toRGB888 drops alpha without compositing. color.Color.RGBA returns
// premultiplied channels, so the color goes through NRGBA first to get the
// stored red, green and blue back.
func toRGB888(c color.Color) rgb888 {
	if v, ok := c.(rgb888); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgb888(Pack(n.R, n.G, n.B))
}

// rgb888 implements the color.Color interface.
type rgb888 uint32

// RGBA implements the color.Color interface. The 8 bit channels are widened
// to 16 bits by repeating the byte; alpha is always fully opaque.
func (c rgb888) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := Unpack(uint32(c))
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	a = 0xFFFF
	return
}
