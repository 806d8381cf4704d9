package overlay

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// Merge composites the overlay onto the original, page for page: page i of
// the result is original page i with overlay page i drawn on top of it.
//
// The original, the overlay and the captured geometry list must agree on
// page count. A divergence means an upstream invariant broke, so the merge
// fails outright instead of truncating to the shorter document.
func Merge(original, overlay []byte, sizes []wordbox.PageSize) ([]byte, error) {
	origPages, err := pageCount(original)
	if err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	overlayPages, err := pageCount(overlay)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	if origPages != len(sizes) || overlayPages != len(sizes) {
		return nil, fmt.Errorf("page count mismatch: original %d, overlay %d, geometry %d",
			origPages, overlayPages, len(sizes))
	}

	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetAutoPageBreak(false, 0)
	// One importer, two source streams: the importer keys parsed sources
	// by reader, and a single importer keeps template object names unique
	// within the output document.
	importer := gofpdi.NewImporter()
	baseReader := io.ReadSeeker(bytes.NewReader(original))
	overReader := io.ReadSeeker(bytes.NewReader(overlay))

	for i, size := range sizes {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})

		base := importer.ImportPageFromStream(pdf, &baseReader, i+1, "/MediaBox")
		importer.UseImportedTemplate(pdf, base, 0, 0, size.Width, 0)

		over := importer.ImportPageFromStream(pdf, &overReader, i+1, "/MediaBox")
		importer.UseImportedTemplate(pdf, over, 0, 0, size.Width, 0)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("merge overlay: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write merged document: %w", err)
	}
	return buf.Bytes(), nil
}

// pageCount reads the count out of the document itself rather than
// trusting the caller.
func pageCount(doc []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(doc), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return count, nil
}
