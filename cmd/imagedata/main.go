package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"imagedata/pkg/convert"
	"imagedata/pkg/loader"
)

var debug = flag.Bool("debug", false, "set debug")

var errUsage = errors.New("expected exactly one image path")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imagedata [--debug] <image>\n")
		fmt.Fprintf(os.Stderr, "Prints the image as a packed 0x00RRGGBB u32 array constant\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
	}

	if err := run(flag.Args(), afero.NewOsFs(), os.Stdout, *debug); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, fs afero.Fs, out io.Writer, debug bool) error {
	if len(args) != 1 {
		return errUsage
	}

	var conv *convert.Converter
	app := fx.New(
		fx.Provide(
			func() (afero.Fs, *zap.Logger, error) {
				logger, err := newLogger(debug)
				return fs, logger, err
			},
			func(f afero.Fs, logger *zap.Logger) *loader.Loader {
				return loader.New(f, logger)
			},
			convert.New,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			if !debug {
				return fxevent.NopLogger
			}
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Populate(&conv),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "wiring failed")
	}

	return conv.Convert(args[0], out)
}

// newLogger writes to stderr only; stdout carries the literal.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
