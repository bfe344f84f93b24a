package bastools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Figure can be drawn onto a canvas of its preferred size.
type Figure interface {
	Draw(c draw.Canvas)
	Size() (w, h vg.Length)
}

// Formats lists the supported output formats.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff"}

// WriteTo draws f in the given format (e.g. "png" or "svg") and writes
// the result to w.
func WriteTo(f Figure, w io.Writer, format string) (int64, error) {
	width, height := f.Size()
	format = strings.ToLower(format)
	if !knownFormat(format) {
		return 0, fmt.Errorf("%w %q (known: %s)", ErrFormat, format, strings.Join(Formats, ", "))
	}
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrFormat, format, err)
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

func knownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Save draws f to the file path. The format is taken from the file
// extension.
func Save(f Figure, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%w: %s has no extension", ErrFormat, path)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := WriteTo(f, file, format)
	if err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	logger.Debug("saved figure", zap.String("path", path), zap.Int64("bytes", n))
	return file.Close()
}
