package hocr

// Document is a minimal hOCR document: pages of clustered lines of words.
type Document struct {
	Title string
	Pages []Page
}

// Page is one page of clustered text.
// Corresponds to the hOCR element with class 'ocr_page'.
type Page struct {
	ID     string // "page_<n>"
	Number int    // 1-based page number
	BBox   BBox   // full page box
	Lines  []Line
}

// Line is one clustered visual line, in cluster order. The ID carries the
// synthesized label for the line.
// Corresponds to the hOCR element with class 'ocr_line'.
type Line struct {
	ID    string
	BBox  BBox
	Words []Word
}

// Word is a single word with its bounding box.
// Corresponds to the hOCR element with class 'ocrx_word'.
type Word struct {
	Text string
	BBox BBox
}

// BBox is an hOCR bounding box: X1,Y1 is the top-left corner and X2,Y2 the
// bottom-right, with y increasing downward per the hOCR convention.
type BBox struct {
	X1, Y1, X2, Y2 float64
}
