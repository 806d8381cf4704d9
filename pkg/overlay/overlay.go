// Package overlay renders marker overlays sized to a source document and
// composites them back onto the original pages.
//
// An overlay is an ephemeral in-memory PDF holding only markers (outline
// rectangles, translucent highlights, text labels); it is produced by
// Render, composited over the original by Merge, and then discarded. The
// source document is never mutated.
package overlay

import (
	"bytes"
	"errors"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// Painter draws the markers for one page onto c. Page i has exactly the
// size captured for it in the geometry list; coordinates handed to the
// canvas are in the shared bottom-left-origin space.
type Painter func(c *Canvas, pageIndex int)

// Render builds the overlay document: one page per entry in sizes, painted
// by the callback. The result is a complete PDF held in memory only.
func Render(sizes []wordbox.PageSize, paint Painter) ([]byte, error) {
	if len(sizes) == 0 {
		return nil, errors.New("no pages to render")
	}

	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetAutoPageBreak(false, 0)
	for i, size := range sizes {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})
		paint(&Canvas{pdf: pdf, height: size.Height}, i)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("render overlay: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write overlay: %w", err)
	}
	return buf.Bytes(), nil
}
