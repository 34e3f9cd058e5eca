// Package literal renders packed pixels as a constant declaration that can
// be pasted into kernel source.
package literal

import (
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	Header = "pub const IMAGE: &'static [u32] = &"
	Footer = ";"
)

// Format returns the declaration on a single line, without a newline.
func Format(pixels []uint32) string {
	values := lo.Map(pixels, func(v uint32, _ int) string {
		return strconv.FormatUint(uint64(v), 10)
	})

	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteByte('[')
	sb.WriteString(strings.Join(values, ", "))
	sb.WriteByte(']')
	sb.WriteString(Footer)
	return sb.String()
}

// Write emits Format(pixels) and a newline with a single call to w.Write.
func Write(w io.Writer, pixels []uint32) error {
	_, err := io.WriteString(w, Format(pixels)+"\n")
	return err
}
