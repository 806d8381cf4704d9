package hocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

func sampleInput() ([]wordbox.PageSize, [][]wordbox.Line, [][]wordbox.Label) {
	sizes := []wordbox.PageSize{{Width: 612, Height: 792}}
	line := wordbox.Line{Words: []wordbox.WordBox{
		{Text: "Hello", Rect: wordbox.NewRect(10, 700, 60, 720)},
		{Text: "World", Rect: wordbox.NewRect(70, 700, 130, 720)},
	}}
	counter := wordbox.NewCounter()
	return sizes, [][]wordbox.Line{{line}}, [][]wordbox.Label{{counter.Next(line)}}
}

func TestBuildConvertsToTopDown(t *testing.T) {
	sizes, lines, labels := sampleInput()

	doc, err := Build("approach1", sizes, lines, labels)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.Equal(t, "page_1", page.ID)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, BBox{X2: 612, Y2: 792}, page.BBox)

	require.Len(t, page.Lines, 1)
	line := page.Lines[0]
	assert.Equal(t, "s1_c2", line.ID)
	// (10,700)-(130,720) bottom-left on a 792pt page becomes top-down
	// (10,72)-(130,92).
	assert.Equal(t, BBox{X1: 10, Y1: 72, X2: 130, Y2: 92}, line.BBox)

	require.Len(t, line.Words, 2)
	assert.Equal(t, "Hello", line.Words[0].Text)
	assert.Equal(t, BBox{X1: 10, Y1: 72, X2: 60, Y2: 92}, line.Words[0].BBox)
}

func TestBuildRejectsMisalignedPages(t *testing.T) {
	sizes, lines, labels := sampleInput()

	_, err := Build("x", sizes[:0], lines, labels)
	assert.Error(t, err)

	_, err = Build("x", sizes, lines, [][]wordbox.Label{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "labels")
}

func TestGenerateParseRoundTrip(t *testing.T) {
	sizes, lines, labels := sampleInput()
	doc, err := Build("approach3", sizes, lines, labels)
	require.NoError(t, err)

	out, err := Generate(&doc)
	require.NoError(t, err)
	assert.Contains(t, out, `class="ocr_page"`)
	assert.Contains(t, out, `id="s1_c2"`)

	parsed, err := Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "approach3", parsed.Title)
	require.Len(t, parsed.Pages, 1)
	assert.Equal(t, 1, parsed.Pages[0].Number)

	require.Len(t, parsed.Pages[0].Lines, 1)
	line := parsed.Pages[0].Lines[0]
	assert.Equal(t, "s1_c2", line.ID)
	assert.Equal(t, doc.Pages[0].Lines[0].BBox, line.BBox)

	require.Len(t, line.Words, 2)
	assert.Equal(t, "Hello", line.Words[0].Text)
	assert.Equal(t, "World", line.Words[1].Text)
}

func TestGenerateEscapesText(t *testing.T) {
	doc := Document{
		Title: "a<b",
		Pages: []Page{{
			ID:     "page_1",
			Number: 1,
			BBox:   BBox{X2: 100, Y2: 100},
			Lines: []Line{{
				ID:    "s1_c1",
				Words: []Word{{Text: "<&>"}},
			}},
		}},
	}

	out, err := Generate(&doc)
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;&amp;&gt;")
	assert.NotContains(t, out, "<&>")

	parsed, err := Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "<&>", parsed.Pages[0].Lines[0].Words[0].Text)
}

func TestParseRejectsNonHOCR(t *testing.T) {
	_, err := Parse([]byte("<html><body><p>plain</p></body></html>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ocr_page")
}

func TestParseTitle(t *testing.T) {
	props := ParseTitle("bbox 100 200 300 400; ppageno 2")
	assert.Equal(t, []string{"100", "200", "300", "400"}, props["bbox"])
	assert.Equal(t, []string{"2"}, props["ppageno"])

	assert.Empty(t, ParseTitle(""))
}

func TestGeneratedBBoxesAreIntegers(t *testing.T) {
	doc := Document{
		Pages: []Page{{
			ID:     "page_1",
			Number: 1,
			BBox:   BBox{X2: 612.3, Y2: 791.7},
		}},
	}

	out, err := Generate(&doc)
	require.NoError(t, err)
	assert.Contains(t, out, "bbox 0 0 612 792")
	assert.False(t, strings.Contains(out, "612.3"))
}
