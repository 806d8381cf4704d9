package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdflens/pdflens/pkg/wordbox"
)

func TestFlipTopDown(t *testing.T) {
	// A box reported with top=10, bottom=20 on a 100pt page lands at
	// y0=80, y1=90 in the bottom-left origin space.
	rect := flipTopDown(5, 10, 50, 20, 100)
	assert.Equal(t, wordbox.NewRect(5, 80, 50, 90), rect)
}

func TestFlipTopDownPreservesHorizontal(t *testing.T) {
	rect := flipTopDown(12.5, 0, 87.5, 100, 100)
	assert.Equal(t, 12.5, rect.X0)
	assert.Equal(t, 87.5, rect.X1)
	assert.Equal(t, 0.0, rect.Y0)
	assert.Equal(t, 100.0, rect.Y1)
}

func TestFlipTopDownRoundTrips(t *testing.T) {
	const pageHeight = 792.0
	orig := flipTopDown(10, 30, 60, 50, pageHeight)
	// Flipping the flipped coordinates restores the original extents.
	back := flipTopDown(orig.X0, pageHeight-orig.Y1, orig.X1, pageHeight-orig.Y0, pageHeight)
	assert.Equal(t, orig, back)
}
