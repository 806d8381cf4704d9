package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/klippa-app/go-pdfium/requests"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// CharSource reconstructs words from pdfium's raw character stream. pdfium
// reports per-character ink boxes already in the bottom-left origin space;
// the adapter only has to split the stream on whitespace and union the
// constituent boxes.
type CharSource struct {
	*pdfiumDoc
}

// OpenChars opens path as a character-stream source.
func OpenChars(path string) (Source, error) {
	doc, err := openPdfiumDoc(path)
	if err != nil {
		return nil, err
	}
	return &CharSource{pdfiumDoc: doc}, nil
}

func (s *CharSource) Words(i int) ([]wordbox.WordBox, error) {
	textPage, err := s.instance.FPDFText_LoadPage(&requests.FPDFText_LoadPage{
		Page: s.page(i),
	})
	if err != nil {
		return nil, fmt.Errorf("page %d: load text page: %w", i+1, err)
	}
	defer s.instance.FPDFText_ClosePage(&requests.FPDFText_ClosePage{
		TextPage: textPage.TextPage,
	})

	count, err := s.instance.FPDFText_CountChars(&requests.FPDFText_CountChars{
		TextPage: textPage.TextPage,
	})
	if err != nil {
		return nil, fmt.Errorf("page %d: count chars: %w", i+1, err)
	}

	chars := make([]charBox, 0, count.Count)
	for j := 0; j < count.Count; j++ {
		char, err := s.instance.FPDFText_GetUnicode(&requests.FPDFText_GetUnicode{
			TextPage: textPage.TextPage,
			Index:    j,
		})
		if err != nil {
			return nil, fmt.Errorf("page %d: char %d: %w", i+1, j, err)
		}
		box, err := s.instance.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{
			TextPage: textPage.TextPage,
			Index:    j,
		})
		if err != nil {
			return nil, fmt.Errorf("page %d: char box %d: %w", i+1, j, err)
		}
		chars = append(chars, charBox{
			r:    rune(char.Unicode),
			rect: wordbox.NewRect(box.Left, box.Bottom, box.Right, box.Top),
		})
	}

	return assembleRuns(chars), nil
}

// charBox is one character with its ink box, in page coordinates.
type charBox struct {
	r    rune
	rect wordbox.Rect
}

// assembleRuns folds a character stream into word boxes. Any unicode
// whitespace flushes the pending run into one word whose rectangle is the
// union of its character boxes. A run whose text trims to nothing is
// dropped without producing a word. The trailing run is flushed at end of
// stream so a page that does not end in whitespace loses nothing.
func assembleRuns(chars []charBox) []wordbox.WordBox {
	var words []wordbox.WordBox
	var pending []charBox

	flush := func() {
		if len(pending) == 0 {
			return
		}
		var b strings.Builder
		for _, c := range pending {
			b.WriteRune(c.r)
		}
		text := b.String()
		if strings.TrimSpace(text) != "" {
			rect := pending[0].rect
			for _, c := range pending[1:] {
				rect = rect.Union(c.rect)
			}
			words = append(words, wordbox.WordBox{Text: text, Rect: rect})
		}
		pending = pending[:0]
	}

	for _, c := range chars {
		if unicode.IsSpace(c.r) {
			flush()
			continue
		}
		pending = append(pending, c)
	}
	flush()
	return words
}
