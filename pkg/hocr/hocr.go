// Package hocr exports clustered lines as hOCR documents and parses them
// back, so the three backends' groupings can be compared with standard
// hOCR tooling.
//
// The model is deliberately minimal: pages of lines of words, exactly what
// line clustering produces. Line IDs carry the synthesized labels, so an
// hOCR viewer shows the same identifiers as the annotation overlay.
//
// hOCR coordinates are top-down (x1,y1 the top-left corner, y growing
// toward the page bottom); Build converts out of the bottom-left-origin
// page space at this boundary.
package hocr
