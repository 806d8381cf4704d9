package overlay

import (
	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B int
}

// HighlightPalette is the two-color cycle for highlight mode. Word index
// parity picks the entry.
var HighlightPalette = [2]RGB{
	{R: 0, G: 255, B: 0},
	{R: 255, G: 0, B: 0},
}

var labelColor = RGB{R: 51, G: 51, B: 51}

const (
	outlineWidth   = 1.0
	highlightAlpha = 0.35
	labelFont      = "Helvetica"
	labelFontSize  = 8.0
	labelOffsetX   = 4.0
	labelTickLen   = 2.0
	labelTickWidth = 0.5
)

// Canvas wraps one overlay page. It accepts bottom-left-origin geometry
// and owns the conversion into fpdf's top-left drawing space; callers
// never flip coordinates themselves.
type Canvas struct {
	pdf    *fpdf.Fpdf
	height float64
}

// Outline strokes the word's box with no fill.
func (c *Canvas) Outline(box wordbox.WordBox, color RGB) {
	r := box.Rect
	c.pdf.SetDrawColor(color.R, color.G, color.B)
	c.pdf.SetLineWidth(outlineWidth)
	c.pdf.Rect(r.X0, c.height-r.Y1, r.Width(), r.Height(), "D")
}

// Highlight fills the word's box with a translucent color picked by word
// index parity, so the text underneath stays legible.
func (c *Canvas) Highlight(box wordbox.WordBox, wordIndex int) {
	color := HighlightPalette[wordIndex%len(HighlightPalette)]
	r := box.Rect
	c.pdf.SetFillColor(color.R, color.G, color.B)
	c.pdf.SetAlpha(highlightAlpha, "Normal")
	c.pdf.Rect(r.X0, c.height-r.Y1, r.Width(), r.Height(), "F")
	c.pdf.SetAlpha(1.0, "Normal")
}

// Annotate draws a clustered line's label just right of its rightmost word
// edge, at the line's lower extent, with a short leader tick back toward
// the line. No rectangle is drawn in this mode.
func (c *Canvas) Annotate(label wordbox.Label) {
	y := c.height - label.Y
	c.pdf.SetFont(labelFont, "", labelFontSize)
	c.pdf.SetTextColor(labelColor.R, labelColor.G, labelColor.B)
	c.pdf.Text(label.X+labelOffsetX, y, latin1(label.Text))
	c.pdf.SetDrawColor(labelColor.R, labelColor.G, labelColor.B)
	c.pdf.SetLineWidth(labelTickWidth)
	c.pdf.Line(label.X, y, label.X+labelTickLen, y)
}

// latin1 transcodes s for fpdf's cp1252 core fonts. Text that does not fit
// the map is drawn raw rather than dropped.
func latin1(s string) string {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return encoded
}
