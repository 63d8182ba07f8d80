package qr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	// ElementID identifies the rendered vector image within the page.
	ElementID = "qr-code"

	DefaultSize = 200
	MinSize     = 128
	MaxSize     = 2048
)

var (
	ErrInvalidSize = errors.New("invalid size: must be between 128 and 2048")
	ErrEncode      = errors.New("content cannot be encoded as a qr code")
)

// Image is a rendered QR code in vector form.
type Image struct {
	ID      string
	Content string
	Color   Color
	Width   int
	Height  int
	Modules int
	SVG     string
}

// Renderer turns URL text into a QR vector image. The error-correction level
// is always qrcode.Highest and the quiet zone is kept.
type Renderer struct {
	size int
	id   string
}

func NewRenderer(size int, id string) (*Renderer, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}
	if id == "" {
		id = ElementID
	}
	return &Renderer{size: size, id: id}, nil
}

func (r *Renderer) Size() int {
	return r.size
}

func (r *Renderer) Render(content string, fg Color) (*Image, error) {
	code, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	code.DisableBorder = false

	bitmap := code.Bitmap()
	n := len(bitmap)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty symbol", ErrEncode)
	}

	return &Image{
		ID:      r.id,
		Content: content,
		Color:   fg,
		Width:   r.size,
		Height:  r.size,
		Modules: n,
		SVG:     buildSVG(r.id, bitmap, r.size, fg),
	}, nil
}

// buildSVG draws one path per image, merging horizontal runs of dark modules
// into single rectangles.
func buildSVG(id string, bitmap [][]bool, size int, fg Color) string {
	n := len(bitmap)

	var path strings.Builder
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&path, "M%d %dh%dv1h-%dz", start, y, x-start, x-start)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" id="%s" width="%d" height="%d" viewBox="0 0 %d %d">`,
		id, size, size, n, n)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="#FFFFFF"/>`, n, n)
	fmt.Fprintf(&sb, `<path fill="%s" d="%s"/>`, fg, path.String())
	sb.WriteString(`</svg>`)
	return sb.String()
}
