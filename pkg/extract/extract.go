// Package extract adapts three unrelated text-geometry backends to one
// contract: ordered word boxes in bottom-left-origin page coordinates.
//
// The three sources differ in what their backend reports:
//
//   - RunSource passes through pre-positioned vector text runs unchanged.
//   - OCRSource reads word geometry from tesseract over page rasters; the
//     top-down pixel convention is flipped and scaled inside the adapter.
//   - CharSource reconstructs words from pdfium's raw character stream.
//
// Coordinate normalization is strictly a backend-local responsibility. All
// three sources are interchangeable inputs to clustering and rendering.
package extract

import "github.com/pdflens/pdflens/pkg/wordbox"

// Source produces ordered word boxes for the pages of one open document.
// Implementations own their document handle; the input file is read-only
// and never shared between sources.
type Source interface {
	// PageCount reports the number of pages in the document.
	PageCount() int

	// PageSize reports the media size of page i (0-based) in points, in
	// the same coordinate space as the word rectangles.
	PageSize(i int) (wordbox.PageSize, error)

	// Words extracts the word boxes of page i in backend traversal order.
	Words(i int) ([]wordbox.WordBox, error)

	// Close releases the underlying document handle.
	Close() error
}

// Opener opens the document at path as a Source.
type Opener func(path string) (Source, error)
