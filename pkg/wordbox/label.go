package wordbox

import "fmt"

// Label is the synthesized annotation for one clustered line. The anchor
// sits at the line's rightmost word edge and its lower vertical extent;
// renderers nudge the text right of it.
type Label struct {
	Text string
	X, Y float64
}

// Counter issues document-wide line indexes for label synthesis. It is
// scoped to one document run and must not be reset between pages: labels
// are unique within a document precisely because the index only ever
// increases. The zero value is not ready; use NewCounter.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first issued index is 1.
func NewCounter() *Counter {
	return &Counter{next: 1}
}

// Next synthesizes the label for line and advances the counter. The label
// encodes the running line index and the line's word count as "s<n>_c<k>";
// the index is unique per document, the word count is not.
func (c *Counter) Next(line Line) Label {
	n := c.next
	c.next++
	return Label{
		Text: fmt.Sprintf("s%d_c%d", n, len(line.Words)),
		X:    line.MaxX(),
		Y:    line.MinY(),
	}
}
