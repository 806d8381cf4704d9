// Package wordbox holds the shared geometry model for extracted words and
// the line clustering and label synthesis built on top of it.
//
// All coordinates are in PDF page points with the origin at the bottom-left
// corner of the page and y increasing upward. Backends convert into this
// space before anything downstream sees their output, so nothing in this
// package (or below it) knows which backend produced a box.
package wordbox

// Rect is an axis-aligned rectangle in page coordinates.
// X0,Y0 is the lower-left corner and X1,Y1 the upper-right.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a rectangle, swapping coordinates as needed so that
// X0 <= X1 and Y0 <= Y1 always hold.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// CenterY returns the vertical center, the reference used for line
// membership decisions.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if o.X0 < r.X0 {
		r.X0 = o.X0
	}
	if o.Y0 < r.Y0 {
		r.Y0 = o.Y0
	}
	if o.X1 > r.X1 {
		r.X1 = o.X1
	}
	if o.Y1 > r.Y1 {
		r.Y1 = o.Y1
	}
	return r
}

// WordBox locates one extracted word on a page. The rectangle bounds the
// glyph ink of Text as reported by the backend that produced it.
type WordBox struct {
	Text string
	Rect Rect
}

// PageSize is the media size of one page in points.
type PageSize struct {
	Width, Height float64
}
