package extract

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/klippa-app/go-pdfium/requests"
	"github.com/otiai10/gosseract/v2"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// ocrDPI is the raster resolution handed to tesseract. 200dpi keeps small
// annotation-sized text recognizable without inflating page images.
const ocrDPI = 200

// OCRSource rasterizes each page with pdfium and reads word geometry back
// from tesseract. Tesseract reports pre-grouped words in a top-down pixel
// convention; the adapter scales pixels to points and flips every box into
// the bottom-left origin space before anything downstream sees it. Skipping
// that flip would hand the merge step upside-down geometry, so it lives
// here and nowhere else.
type OCRSource struct {
	*pdfiumDoc
}

// OpenOCR opens path as an OCR-backed source.
func OpenOCR(path string) (Source, error) {
	doc, err := openPdfiumDoc(path)
	if err != nil {
		return nil, err
	}
	return &OCRSource{pdfiumDoc: doc}, nil
}

func (s *OCRSource) Words(i int) ([]wordbox.WordBox, error) {
	size, err := s.PageSize(i)
	if err != nil {
		return nil, err
	}

	render, err := s.instance.RenderPageInDPI(&requests.RenderPageInDPI{
		Page: s.page(i),
		DPI:  ocrDPI,
	})
	if err != nil {
		return nil, fmt.Errorf("page %d: render: %w", i+1, err)
	}

	var raster bytes.Buffer
	if err := png.Encode(&raster, render.Result.Image); err != nil {
		return nil, fmt.Errorf("page %d: encode raster: %w", i+1, err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetImageFromBytes(raster.Bytes()); err != nil {
		return nil, fmt.Errorf("page %d: load raster: %w", i+1, err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("page %d: recognize: %w", i+1, err)
	}

	scale := 1.0 / render.Result.PointToPixelRatio
	words := make([]wordbox.WordBox, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, wordbox.WordBox{
			Text: text,
			Rect: flipTopDown(
				float64(b.Box.Min.X)*scale,
				float64(b.Box.Min.Y)*scale,
				float64(b.Box.Max.X)*scale,
				float64(b.Box.Max.Y)*scale,
				size.Height,
			),
		})
	}
	return words, nil
}

// flipTopDown converts a rectangle whose vertical coordinates grow downward
// from the page's top edge into the bottom-left origin space.
func flipTopDown(x0, top, x1, bottom, pageHeight float64) wordbox.Rect {
	return wordbox.NewRect(x0, pageHeight-bottom, x1, pageHeight-top)
}
