package hocr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Parse converts hOCR data back into the object model. It understands the
// subset Generate emits (pages, lines, words) and ignores any other hOCR
// classes it encounters.
func Parse(data []byte) (Document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("parse hOCR: %w", err)
	}

	var doc Document
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "title":
				doc.Title = textContent(n)
				return
			case hasClass(n, "ocr_page"):
				doc.Pages = append(doc.Pages, parsePage(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if len(doc.Pages) == 0 {
		return Document{}, fmt.Errorf("no ocr_page elements found")
	}
	return doc, nil
}

func parsePage(n *html.Node) Page {
	title := attr(n, "title")
	page := Page{
		ID:   attr(n, "id"),
		BBox: boxFromTitle(title),
	}
	if v, ok := ParseTitle(title)["ppageno"]; ok && len(v) > 0 {
		page.Number, _ = strconv.Atoi(v[0])
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
			page.Lines = append(page.Lines, parseLine(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return page
}

func parseLine(n *html.Node) Line {
	line := Line{
		ID:   attr(n, "id"),
		BBox: boxFromTitle(attr(n, "title")),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, "ocrx_word") {
			line.Words = append(line.Words, Word{
				Text: textContent(c),
				BBox: boxFromTitle(attr(c, "title")),
			})
		}
	}
	return line
}

// ParseTitle breaks an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; ppageno 2".
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(strings.TrimSpace(part))
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}
	return result
}

// boxFromTitle extracts the bbox property from a title attribute. A
// missing or short bbox yields the zero box.
func boxFromTitle(title string) BBox {
	coords, ok := ParseTitle(title)["bbox"]
	if !ok || len(coords) < 4 {
		return BBox{}
	}
	x1, _ := strconv.ParseFloat(coords[0], 64)
	y1, _ := strconv.ParseFloat(coords[1], 64)
	x2, _ := strconv.ParseFloat(coords[2], 64)
	y2, _ := strconv.ParseFloat(coords[3], 64)
	return BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
