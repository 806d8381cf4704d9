package wordbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterLabelFormat(t *testing.T) {
	line := Line{Words: []WordBox{
		{Text: "Hello", Rect: NewRect(10, 780, 60, 800)},
		{Text: "World", Rect: NewRect(70, 780, 130, 800)},
	}}

	label := NewCounter().Next(line)
	assert.Equal(t, "s1_c2", label.Text)
	assert.Equal(t, 130.0, label.X)
	assert.Equal(t, 780.0, label.Y)
}

func TestCounterStrictlyIncreasingAcrossPages(t *testing.T) {
	counter := NewCounter()
	line := Line{Words: []WordBox{box("w", 0, 10, 100)}}

	// Three pages with three lines each share one counter; the index
	// never resets and never repeats.
	var labels []Label
	for page := 0; page < 3; page++ {
		for i := 0; i < 3; i++ {
			labels = append(labels, counter.Next(line))
		}
	}

	require.Len(t, labels, 9)
	for i, label := range labels {
		assert.Equal(t, fmt.Sprintf("s%d_c1", i+1), label.Text)
	}
}

func TestCounterWordCountNotUnique(t *testing.T) {
	counter := NewCounter()
	two := Line{Words: []WordBox{box("a", 0, 10, 100), box("b", 20, 30, 100)}}

	first := counter.Next(two)
	second := counter.Next(two)
	assert.Equal(t, "s1_c2", first.Text)
	assert.Equal(t, "s2_c2", second.Text)
}

func TestLabelAnchorFromLineExtents(t *testing.T) {
	// The anchor derives from the rightmost edge and lower extent across
	// every member, not just the first.
	line := Line{Words: []WordBox{
		{Text: "low", Rect: NewRect(10, 778, 40, 798)},
		{Text: "wide", Rect: NewRect(50, 781, 140, 801)},
	}}

	label := NewCounter().Next(line)
	assert.Equal(t, 140.0, label.X)
	assert.Equal(t, 778.0, label.Y)
}
