package wordbox

import (
	"math"
	"sort"
)

// Line is an ordered run of words judged to share a vertical position.
// Membership is decided against the vertical center of the first-placed
// word, not a running average, so assignment order matters.
type Line struct {
	Words []WordBox
}

// MaxX returns the rightmost edge among the line's words.
func (l Line) MaxX() float64 {
	max := math.Inf(-1)
	for _, w := range l.Words {
		if w.Rect.X1 > max {
			max = w.Rect.X1
		}
	}
	return max
}

// MinY returns the line's lower vertical extent.
func (l Line) MinY() float64 {
	min := math.Inf(1)
	for _, w := range l.Words {
		if w.Rect.Y0 < min {
			min = w.Rect.Y0
		}
	}
	return min
}

// MaxY returns the line's upper vertical extent.
func (l Line) MaxY() float64 {
	max := math.Inf(-1)
	for _, w := range l.Words {
		if w.Rect.Y1 > max {
			max = w.Rect.Y1
		}
	}
	return max
}

// Bounds returns the union of the line's word rectangles.
func (l Line) Bounds() Rect {
	r := l.Words[0].Rect
	for _, w := range l.Words[1:] {
		r = r.Union(w.Rect)
	}
	return r
}

// ClusterLines groups words into visual lines.
//
// Words are traversed top to bottom, left to right (descending vertical
// center, then ascending left edge). Each word joins the first existing
// line whose reference center lies within tolerance (closed interval) of
// its own, otherwise it starts a new line. Lines come back in order of
// first appearance and are never re-sorted, which for this traversal is
// top to bottom.
//
// The pass is greedy: a word scanned before a better-matching line exists
// starts a line of its own. That keeps the pass linear; callers wanting an
// order-independent grouping need a different algorithm.
func ClusterLines(words []WordBox, tolerance float64) []Line {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]WordBox, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Rect.CenterY(), sorted[j].Rect.CenterY()
		if ci != cj {
			return ci > cj
		}
		return sorted[i].Rect.X0 < sorted[j].Rect.X0
	})

	var lines []Line
	var refs []float64 // first-placed centers, parallel to lines
	for _, w := range sorted {
		center := w.Rect.CenterY()
		placed := false
		for i := range lines {
			if math.Abs(refs[i]-center) <= tolerance {
				lines[i].Words = append(lines[i].Words, w)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, Line{Words: []WordBox{w}})
			refs = append(refs, center)
		}
	}
	return lines
}
