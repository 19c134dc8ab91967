package htmlutil

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("modchem.lib.htmlutil")

func GetText(node *html.Node) string {
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
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Name string
	Href string
	// HasHref is false for anchors without an href attribute, they are still
	// returned so that positions in the list line up with the document.
	HasHref bool
}

var whitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText strips non-printable characters and collapses runs of whitespace.
func CleanText(s string) string {
	s = whitespace.ReplaceAllString(s, " ")
	s = removeNonPrintable(s)
	return strings.Trim(s, " ")
}

// GetAnchors returns one Anchor per node in document order. Hrefs that parse
// as urls are normalized, anything else is kept as written.
func GetAnchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	_, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := make([]Anchor, 0, len(sel.Nodes))
	missing := 0
	for _, n := range sel.Nodes {
		href := ""
		hasHref := false
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				hasHref = true
				break
			}
		}
		if !hasHref {
			missing++
		}

		if link, err := url.Parse(href); err == nil {
			href = link.String()
		} else {
			span.AddEvent("unparsable href", trace.WithAttributes(
				attribute.String("href", href),
				attribute.String("err", err.Error()),
			))
		}

		anchors = append(anchors, Anchor{
			Name:    CleanText(GetText(n)),
			Href:    href,
			HasHref: hasHref,
		})
	}

	span.SetAttributes(
		attribute.Int("anchors", len(anchors)),
		attribute.Int("missing_href", missing),
	)
	return anchors
}

// ParseTable reads the data rows of an html table. Rows made up only of
// header cells are skipped, so index 0 is the first data row.
func ParseTable(table *goquery.Selection) [][]string {
	rows := [][]string{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// nested tables belong to their own cell
		if tr.ParentsFiltered("table").First().Get(0) != table.Get(0) {
			return
		}
		cells := tr.ChildrenFiltered("td, th")
		if cells.Length() == 0 || cells.Filter("td").Length() == 0 {
			return
		}
		var row []string
		cells.Each(func(_ int, cell *goquery.Selection) {
			row = append(row, CleanText(GetText(cell.Get(0))))
		})
		rows = append(rows, row)
	})
	return rows
}

// InnerHTML renders the children of the first node of a selection.
func InnerHTML(sel *goquery.Selection) (string, error) {
	return sel.First().Html()
}
