package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

// RunSource reads vector text runs straight from the content streams via
// github.com/ledongthuc/pdf. Runs arrive pre-positioned in the bottom-left
// origin space, so they pass through untouched: one run, one word box,
// duplicates and all. Run granularity is whatever the producing writer
// emitted per show operation, which for most documents is word-sized.
type RunSource struct {
	file   *os.File
	reader *lpdf.Reader
}

// OpenRuns opens path as a run-level source.
func OpenRuns(path string) (Source, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &RunSource{file: f, reader: r}, nil
}

func (s *RunSource) PageCount() int {
	return s.reader.NumPage()
}

func (s *RunSource) PageSize(i int) (wordbox.PageSize, error) {
	page := s.reader.Page(i + 1)
	if page.V.IsNull() {
		return wordbox.PageSize{}, fmt.Errorf("page %d: missing page object", i+1)
	}
	mb, err := mediaBox(page)
	if err != nil {
		return wordbox.PageSize{}, fmt.Errorf("page %d: %w", i+1, err)
	}
	return wordbox.PageSize{Width: mb.Width(), Height: mb.Height()}, nil
}

func (s *RunSource) Words(i int) ([]wordbox.WordBox, error) {
	page := s.reader.Page(i + 1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", i+1)
	}

	content := page.Content()
	words := make([]wordbox.WordBox, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		// The reader reports the baseline origin and advance width; the
		// font size stands in for the ink height.
		words = append(words, wordbox.WordBox{
			Text: t.S,
			Rect: wordbox.NewRect(t.X, t.Y, t.X+t.W, t.Y+t.FontSize),
		})
	}
	return words, nil
}

func (s *RunSource) Close() error {
	return s.file.Close()
}

// mediaBox resolves /MediaBox for a page, walking up the page tree because
// the reader does not resolve inherited attributes.
func mediaBox(page lpdf.Page) (wordbox.Rect, error) {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			return wordbox.NewRect(
				mb.Index(0).Float64(),
				mb.Index(1).Float64(),
				mb.Index(2).Float64(),
				mb.Index(3).Float64(),
			), nil
		}
	}
	return wordbox.Rect{}, errors.New("no MediaBox in page tree")
}
