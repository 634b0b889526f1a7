// Package svg rasterizes vector icons with oksvg and rasterx.
package svg

import (
	"bytes"
	"context"
	"encoding/xml"
	"image"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Rasterizer = (*Rasterizer)(nil)

// Rasterizer renders SVG files to PNG bytes.
type Rasterizer struct{}

// NewRasterizer creates a new Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize renders the SVG at path so that the output is height pixels tall.
// The width follows the aspect ratio of the root width and height attributes,
// or of the viewBox when they are absent. The viewBox is fitted into that box
// centered, unless preserveAspectRatio is "none".
func (r *Rasterizer) Rasterize(ctx context.Context, path string, height int) ([]byte, error) {
	if height <= 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidHeight, "cannot rasterize"), "height", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	icon, doc, err := r.load(path)
	if err != nil {
		return nil, err
	}

	img, err := r.draw(icon, doc, height)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRasterizeFailed.Error()), "path", path)
	}
	return buf.Bytes(), nil
}

func (r *Rasterizer) load(path string) (*oksvg.SvgIcon, document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, document{}, zerr.With(zerr.Wrap(err, "failed to open vector source"), "path", path)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, document{}, zerr.With(zerr.Wrap(err, domain.ErrRasterizeFailed.Error()), "path", path)
	}
	return icon, readDocument(data), nil
}

func (r *Rasterizer) draw(icon *oksvg.SvgIcon, doc document, height int) (*image.RGBA, error) {
	vbW, vbH := icon.ViewBox.W, icon.ViewBox.H
	if vbW <= 0 || vbH <= 0 {
		return nil, zerr.Wrap(domain.ErrRasterizeFailed, "vector source has no usable viewBox")
	}

	docW, docH := doc.width, doc.height
	if docW <= 0 || docH <= 0 {
		docW, docH = vbW, vbH
	}

	width := max(1, int(math.Round(docW*float64(height)/docH)))
	w, h := float64(width), float64(height)
	if doc.stretch {
		icon.SetTarget(0, 0, w, h)
	} else {
		scale := min(w/vbW, h/vbH)
		dw, dh := vbW*scale, vbH*scale
		icon.SetTarget((w-dw)/2, (h-dh)/2, dw, dh)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1)

	return img, nil
}

// document holds the root element attributes that size the output.
type document struct {
	width, height float64
	stretch       bool
}

// readDocument returns the sizing attributes of the root element.
// Lengths that are missing or relative are reported as zero.
func readDocument(data []byte) document {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false

	for {
		tok, err := dec.Token()
		if err != nil {
			return document{}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var doc document
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "width":
				doc.width = parseLength(attr.Value)
			case "height":
				doc.height = parseLength(attr.Value)
			case "preserveAspectRatio":
				doc.stretch = strings.TrimSpace(attr.Value) == "none"
			}
		}
		return doc
	}
}

// pixelsPer maps absolute length units to CSS pixels.
var pixelsPer = map[string]float64{
	"px": 1,
	"pt": 96.0 / 72,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
}

func parseLength(v string) float64 {
	v = strings.TrimSpace(v)
	factor := 1.0
	if len(v) > 2 {
		if f, ok := pixelsPer[v[len(v)-2:]]; ok {
			v, factor = v[:len(v)-2], f
		}
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return f * factor
}
