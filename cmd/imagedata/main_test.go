package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{10, 20, 30, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/img/pixel.png", buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/img/notes.txt", []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		args  []string
		debug bool
		want  string
		usage bool
		fail  bool
	}{
		{name: "pixel", args: []string{"/img/pixel.png"}, want: "pub const IMAGE: &'static [u32] = &[660510];\n"},
		{name: "pixel debug", args: []string{"/img/pixel.png"}, debug: true, want: "pub const IMAGE: &'static [u32] = &[660510];\n"},
		{name: "no args", args: nil, usage: true, fail: true},
		{name: "extra args", args: []string{"/img/pixel.png", "/img/pixel.png"}, usage: true, fail: true},
		{name: "missing file", args: []string{"/img/missing.png"}, fail: true},
		{name: "not an image", args: []string{"/img/notes.txt"}, fail: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(c.args, fs, &out, c.debug)

			if c.fail {
				if err == nil {
					t.Fatal("expected an error")
				}
				if out.Len() != 0 {
					t.Errorf("expected no output, got %q", out.String())
				}
				if c.usage && errors.Cause(err) != errUsage {
					t.Errorf("expected usage error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != c.want {
				t.Errorf("expected %q, got %q", c.want, out.String())
			}
			if strings.Count(out.String(), "\n") != 1 {
				t.Errorf("expected exactly one line, got %q", out.String())
			}
		})
	}
}
