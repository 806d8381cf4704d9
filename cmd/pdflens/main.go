// pdflens renders visual-debug views of one PDF's text geometry, computed
// three independent ways so the backends can be compared for fidelity.
//
// It reads files/pi.pdf and writes nine PDFs plus three hOCR files:
//
//	approach1/  vector text runs read from the content streams
//	approach2/  OCR word geometry from tesseract over page rasters
//	approach3/  words reconstructed from pdfium's character stream
//
// Each approach directory holds bbox_pi.pdf (outlined word boxes),
// highlight_pi.pdf (alternating translucent fills), annotation_pi.pdf
// (running line labels "s<n>_c<k>") and lines_pi.hocr (the clustered
// lines as hOCR). The source document is never modified.
//
// There are no flags and no configuration; run it from the directory
// containing files/pi.pdf.
package main

import (
	"log/slog"
	"os"

	"github.com/pdflens/pdflens/pkg/approach"
	"github.com/pdflens/pdflens/pkg/extract"
	"github.com/pdflens/pdflens/pkg/overlay"
)

const sourcePDF = "files/pi.pdf"

func main() {
	approaches := []approach.Approach{
		{
			Name:      "approach1",
			Open:      extract.OpenRuns,
			Stroke:    overlay.RGB{R: 255, G: 217, B: 26},
			Tolerance: 2.0,
		},
		{
			Name:      "approach2",
			Open:      extract.OpenOCR,
			Stroke:    overlay.RGB{R: 255, G: 255, B: 0},
			Tolerance: 2.0,
		},
		{
			Name:      "approach3",
			Open:      extract.OpenChars,
			Stroke:    overlay.RGB{R: 173, G: 216, B: 230},
			Tolerance: 2.5,
		},
	}

	// An unreadable source is fatal before any approach produces output.
	if _, err := os.Stat(sourcePDF); err != nil {
		slog.Error("source document unavailable", "path", sourcePDF, "error", err)
		os.Exit(1)
	}

	failed := false
	for _, a := range approaches {
		slog.Info("running approach", "name", a.Name)
		if err := a.Run(sourcePDF, "."); err != nil {
			// A failure aborts this approach's output entirely; the
			// remaining approaches still get their chance.
			slog.Error("approach failed", "name", a.Name, "error", err)
			failed = true
			continue
		}
		slog.Info("approach complete", "name", a.Name)
	}
	if failed {
		os.Exit(1)
	}
}
