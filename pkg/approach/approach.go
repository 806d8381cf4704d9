// Package approach wires one extraction backend through line clustering,
// label synthesis, overlay rendering and merging, and writes that
// backend's artifacts. The three approaches share every stage except the
// Source that feeds them.
package approach

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdflens/pdflens/pkg/extract"
	"github.com/pdflens/pdflens/pkg/hocr"
	"github.com/pdflens/pdflens/pkg/overlay"
	"github.com/pdflens/pdflens/pkg/wordbox"
)

// Output file names, shared by every approach.
const (
	BBoxFile       = "bbox_pi.pdf"
	HighlightFile  = "highlight_pi.pdf"
	AnnotationFile = "annotation_pi.pdf"
	LinesFile      = "lines_pi.hocr"
)

// Approach is one end-to-end extraction and render strategy. Each approach
// opens its own handle to the input document and owns its output
// directory; approaches share no state.
type Approach struct {
	// Name is the output directory name, e.g. "approach1".
	Name string

	// Open opens the input document with this approach's backend.
	Open extract.Opener

	// Stroke is the outline color for bounding-box mode. Each approach
	// uses its own so the outputs are tellable apart at a glance.
	Stroke overlay.RGB

	// Tolerance is the line clustering tolerance in page points.
	Tolerance float64
}

// Run processes the document at inputPath end to end and writes the four
// artifacts under outRoot/<Name>. Any failure aborts the whole approach;
// writes go through a temp file and rename, so a failed run never leaves a
// partial artifact behind.
func (a Approach) Run(inputPath, outRoot string) error {
	src, err := a.Open(inputPath)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	defer src.Close()

	// Capture page geometry and extract every page up front, in document
	// order. The geometry list sizes the overlay pages and anchors the
	// page-count invariant checked at merge time.
	n := src.PageCount()
	sizes := make([]wordbox.PageSize, n)
	pageWords := make([][]wordbox.WordBox, n)
	for i := 0; i < n; i++ {
		if sizes[i], err = src.PageSize(i); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
		if pageWords[i], err = src.Words(i); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
	}

	original, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%s: read source: %w", a.Name, err)
	}

	outDir := filepath.Join(outRoot, a.Name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}

	boxes, err := overlay.Render(sizes, func(c *overlay.Canvas, page int) {
		for _, w := range pageWords[page] {
			c.Outline(w, a.Stroke)
		}
	})
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	if err := a.compose(original, boxes, sizes, outDir, BBoxFile); err != nil {
		return err
	}

	highlights, err := overlay.Render(sizes, func(c *overlay.Canvas, page int) {
		for i, w := range pageWords[page] {
			c.Highlight(w, i)
		}
	})
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	if err := a.compose(original, highlights, sizes, outDir, HighlightFile); err != nil {
		return err
	}

	// Cluster once; the labels feed both the annotation overlay and the
	// hOCR export. The counter spans the whole document, never resetting
	// between pages.
	lines := make([][]wordbox.Line, n)
	labels := make([][]wordbox.Label, n)
	counter := wordbox.NewCounter()
	for i := range pageWords {
		lines[i] = wordbox.ClusterLines(pageWords[i], a.Tolerance)
		labels[i] = make([]wordbox.Label, 0, len(lines[i]))
		for _, line := range lines[i] {
			labels[i] = append(labels[i], counter.Next(line))
		}
	}

	annotations, err := overlay.Render(sizes, func(c *overlay.Canvas, page int) {
		for _, label := range labels[page] {
			c.Annotate(label)
		}
	})
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	if err := a.compose(original, annotations, sizes, outDir, AnnotationFile); err != nil {
		return err
	}

	doc, err := hocr.Build(a.Name, sizes, lines, labels)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	rendered, err := hocr.Generate(&doc)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	if err := writeFileAtomic(filepath.Join(outDir, LinesFile), []byte(rendered)); err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	return nil
}

// compose merges one overlay onto the original and writes the result.
func (a Approach) compose(original, ovl []byte, sizes []wordbox.PageSize, outDir, name string) error {
	merged, err := overlay.Merge(original, ovl, sizes)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", a.Name, name, err)
	}
	if err := writeFileAtomic(filepath.Join(outDir, name), merged); err != nil {
		return fmt.Errorf("%s: %s: %w", a.Name, name, err)
	}
	return nil
}
