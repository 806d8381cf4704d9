package approach

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdflens/pdflens/pkg/extract"
	"github.com/pdflens/pdflens/pkg/hocr"
	"github.com/pdflens/pdflens/pkg/overlay"
	"github.com/pdflens/pdflens/pkg/wordbox"
)

// stubSource serves canned geometry, standing in for a real backend.
type stubSource struct {
	sizes  []wordbox.PageSize
	words  [][]wordbox.WordBox
	closed bool
}

func (s *stubSource) PageCount() int { return len(s.sizes) }

func (s *stubSource) PageSize(i int) (wordbox.PageSize, error) { return s.sizes[i], nil }

func (s *stubSource) Words(i int) ([]wordbox.WordBox, error) { return s.words[i], nil }

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

// writeBlankPDF renders an empty single-page document to serve as the
// original input.
func writeBlankPDF(t *testing.T, path string, size wordbox.PageSize) {
	t.Helper()
	doc, err := overlay.Render([]wordbox.PageSize{size}, func(*overlay.Canvas, int) {})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, doc, 0o644))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	size := wordbox.PageSize{Width: 612, Height: 792}
	input := filepath.Join(dir, "pi.pdf")
	writeBlankPDF(t, input, size)

	src := &stubSource{
		sizes: []wordbox.PageSize{size},
		words: [][]wordbox.WordBox{{
			{Text: "Hello", Rect: wordbox.NewRect(10, 780, 60, 800)},
			{Text: "World", Rect: wordbox.NewRect(70, 780, 130, 800)},
		}},
	}
	a := Approach{
		Name:      "approach1",
		Open:      func(string) (extract.Source, error) { return src, nil },
		Stroke:    overlay.RGB{R: 255, G: 217, B: 26},
		Tolerance: 2.0,
	}

	require.NoError(t, a.Run(input, dir))
	assert.True(t, src.closed)

	conf := model.NewDefaultConfiguration()
	for _, name := range []string{BBoxFile, HighlightFile, AnnotationFile} {
		out, err := os.ReadFile(filepath.Join(dir, "approach1", name))
		require.NoError(t, err, name)
		require.NoError(t, api.Validate(bytes.NewReader(out), conf), name)
		count, err := api.PageCount(bytes.NewReader(out), conf)
		require.NoError(t, err, name)
		assert.Equal(t, 1, count, name)
	}

	// Two words on one visual line: a single label, s1_c2, anchored at
	// the line's rightmost edge.
	raw, err := os.ReadFile(filepath.Join(dir, "approach1", LinesFile))
	require.NoError(t, err)
	doc, err := hocr.Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Pages[0].Lines, 1)
	line := doc.Pages[0].Lines[0]
	assert.Equal(t, "s1_c2", line.ID)
	assert.Len(t, line.Words, 2)
	assert.Equal(t, 130.0, line.BBox.X2)

	// No temp files left behind by the atomic writes.
	leftovers, err := filepath.Glob(filepath.Join(dir, "approach1", ".pdflens-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestRunAbortsWhenSourceFails(t *testing.T) {
	dir := t.TempDir()
	a := Approach{
		Name: "approach2",
		Open: func(string) (extract.Source, error) {
			return nil, os.ErrNotExist
		},
	}

	err := a.Run(filepath.Join(dir, "missing.pdf"), dir)
	require.Error(t, err)

	// No output directory, no partial artifacts.
	_, statErr := os.Stat(filepath.Join(dir, "approach2"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	require.NoError(t, writeFileAtomic(path, []byte("first")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))

	// Overwrites are atomic replacements.
	require.NoError(t, writeFileAtomic(path, []byte("second")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
