package qr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	DefaultFilename = "qr-code.png"
	PNGContentType  = "image/png"
)

var (
	ErrImageNotFound    = errors.New("qr image not found")
	ErrNoDrawingContext = errors.New("no drawing surface available")
	ErrRasterize        = errors.New("failed to rasterize qr image")
	ErrVerifyFailed     = errors.New("exported image does not decode to the source url")
)

// Export is a finished PNG ready to be delivered as a file download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
	Width       int
	Height      int
}

// Exporter converts a rendered vector image into a PNG file. Each call
// draws onto its own surface, so concurrent exports share nothing.
type Exporter struct {
	filename string
	verify   bool
}

func NewExporter(filename string, verify bool) *Exporter {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Exporter{filename: filename, verify: verify}
}

func (e *Exporter) Filename() string {
	return e.filename
}

func (e *Exporter) Export(ctx context.Context, img *Image) (*Export, error) {
	svg, err := e.Serialize(img)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bitmap, err := e.Rasterize(svg, img.Width, img.Height)
	if err != nil {
		return nil, err
	}

	if e.verify {
		if err := e.verifyImage(svg, img); err != nil {
			return nil, err
		}
	}

	data, err := Encode(bitmap)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename:    e.filename,
		ContentType: PNGContentType,
		Data:        data,
		Width:       img.Width,
		Height:      img.Height,
	}, nil
}

// verifyPixelsPerModule keeps module edges on pixel boundaries so the
// decoder never sees anti-aliased modules, whatever the delivered size.
const verifyPixelsPerModule = 4

// verifyImage decodes a separate raster drawn at a whole number of pixels
// per module. The delivered PNG stays at its natural size.
func (e *Exporter) verifyImage(svg string, img *Image) error {
	side := img.Modules * verifyPixelsPerModule
	if side <= 0 {
		return ErrVerifyFailed
	}
	bitmap, err := e.Rasterize(svg, side, side)
	if err != nil {
		return err
	}
	return Verify(bitmap, img.Content)
}

// Serialize returns the markup of the image element.
func (e *Exporter) Serialize(img *Image) (string, error) {
	if img == nil || img.SVG == "" {
		return "", ErrImageNotFound
	}
	return img.SVG, nil
}

// Rasterize decodes serialized SVG and draws it onto an RGBA surface of
// width x height pixels.
func (e *Exporter) Rasterize(svg string, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNoDrawingContext
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	surface := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, surface, surface.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return surface, nil
}

func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads the text back out of a QR bitmap.
func Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}

	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("no qr code found in image: %w", err)
	}

	return result.GetText(), nil
}

func Verify(img image.Image, want string) error {
	got, err := Decode(img)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if got != want {
		return ErrVerifyFailed
	}
	return nil
}
