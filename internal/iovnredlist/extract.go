package iovnredlist

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	categoryLabel   = "Phân hạng bảo tồn"
	assessmentLabel = "Thông tin đánh giá"
)

var (
	codeRe  = regexp.MustCompile(`\b(CR|EN|VU|NT|LC|DD|EW|EX|NE)\b`)
	fieldRe = regexp.MustCompile(`Phân hạng[:\s\x{00A0}]+([A-Z]{1,2})`)
)

// extractCategory finds a conservation category on a species page.
//
// First it looks for an h3 or h4 heading with the category label and
// reads the next p or div sibling, accepting only known category codes.
// If that fails, it finds the first div after an h2 with the assessment
// label and reads the labeled category field.
//
// Both paths depend on the page layout. Their results are not cross
// checked, so a layout change can make either of them return a stale or
// wrong code.
func extractCategory(doc *goquery.Document) (string, bool) {
	if code, ok := fromCategoryHeading(doc); ok {
		return code, true
	}
	return fromAssessmentSection(doc)
}

func fromCategoryHeading(doc *goquery.Document) (string, bool) {
	var res string
	doc.Find("h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.Contains(h.Text(), categoryLabel) {
			return true
		}
		next := h.NextAllFiltered("p, div").First()
		if next.Length() == 0 {
			return true
		}
		m := codeRe.FindStringSubmatch(strings.TrimSpace(next.Text()))
		if m == nil {
			return true
		}
		res = m[1]
		return false
	})
	return res, res != ""
}

func fromAssessmentSection(doc *goquery.Document) (string, bool) {
	var h2 *html.Node
	doc.Find("h2").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(h.Text(), assessmentLabel) {
			h2 = h.Nodes[0]
			return false
		}
		return true
	})
	if h2 == nil {
		return "", false
	}

	div := nextElement(h2, "div")
	if div == nil {
		return "", false
	}

	m := fieldRe.FindStringSubmatch(getText(div))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// nextElement returns the first element with the given tag that follows
// n in document order.
func nextElement(n *html.Node, tag string) *html.Node {
	for cur := following(n); cur != nil; cur = following(cur) {
		if cur.Type == html.ElementNode && cur.Data == tag {
			return cur
		}
	}
	return nil
}

func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

func getText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		getTextRecursive(child, buffer)
	}
}
