package hocr

import (
	"fmt"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// Build converts clustered lines from the bottom-left-origin page space
// into an hOCR document. The sizes, lines and labels slices must be
// index-aligned per page; labels must be aligned with the lines of their
// page (the same traversal produced both).
func Build(title string, sizes []wordbox.PageSize, lines [][]wordbox.Line, labels [][]wordbox.Label) (Document, error) {
	if len(sizes) != len(lines) || len(sizes) != len(labels) {
		return Document{}, fmt.Errorf("page count mismatch: geometry %d, lines %d, labels %d",
			len(sizes), len(lines), len(labels))
	}

	doc := Document{Title: title}
	for p, size := range sizes {
		if len(lines[p]) != len(labels[p]) {
			return Document{}, fmt.Errorf("page %d: %d lines but %d labels",
				p+1, len(lines[p]), len(labels[p]))
		}

		page := Page{
			ID:     fmt.Sprintf("page_%d", p+1),
			Number: p + 1,
			BBox:   BBox{X2: size.Width, Y2: size.Height},
		}
		for i, line := range lines[p] {
			hl := Line{
				ID:   labels[p][i].Text,
				BBox: topDown(line.Bounds(), size.Height),
			}
			for _, w := range line.Words {
				hl.Words = append(hl.Words, Word{
					Text: w.Text,
					BBox: topDown(w.Rect, size.Height),
				})
			}
			page.Lines = append(page.Lines, hl)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// topDown converts a bottom-left-origin rectangle into the hOCR top-down
// convention.
func topDown(r wordbox.Rect, pageHeight float64) BBox {
	return BBox{
		X1: r.X0,
		Y1: pageHeight - r.Y1,
		X2: r.X1,
		Y2: pageHeight - r.Y0,
	}
}
