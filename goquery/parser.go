// Package goquery implements knacks.DocumentParser on top of goquery.
package goquery

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/redsepro/knacks"
	"golang.org/x/net/html/atom"
)

// Ensure Parser implements knacks.DocumentParser at compile time.
var _ knacks.DocumentParser = (*Parser)(nil)

// headingSelector matches every heading level in document order.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// Parser reads the knack list fragment and prepares knack documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseCatalog returns one knack per <option> of the list fragment. The
// option value is the knack file, its text the title. Options without a
// value are skipped.
func (p *Parser) ParseCatalog(fragment string) ([]knacks.Knack, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, knacks.Errorf(knacks.EINVALID, "failed to parse knack list: %v", err)
	}

	var list []knacks.Knack
	doc.Find("option").Each(func(_ int, sel *goquery.Selection) {
		file, _ := sel.Attr("value")
		file = strings.TrimSpace(file)
		if file == "" {
			return
		}
		_, selected := sel.Attr("selected")
		list = append(list, knacks.Knack{
			File:     file,
			Title:    collapse(sel.Text()),
			Selected: selected,
		})
	})

	return list, nil
}

// ParseDocument removes every id attribute from the fragment, prepends the
// title as a paragraph, and numbers the headings toc-0, toc-1, ... in
// document order.
func (p *Parser) ParseDocument(fragment, title string) (*knacks.ParsedDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, knacks.Errorf(knacks.EINVALID, "failed to parse document: %v", err)
	}

	body := doc.Find("body")
	body.Find("[id]").RemoveAttr("id")
	body.PrependHtml(`<p class="title">` + html.EscapeString(title) + `</p>`)

	var headings []knacks.Heading
	body.Find(headingSelector).Each(func(i int, sel *goquery.Selection) {
		id := fmt.Sprintf("toc-%d", i)
		sel.SetAttr("id", id)
		headings = append(headings, knacks.Heading{
			ID:    id,
			Level: headingLevel(sel.Nodes[0].DataAtom),
			Title: collapse(sel.Text()),
			Line:  -1,
		})
	})

	out, err := body.Html()
	if err != nil {
		return nil, knacks.Errorf(knacks.EINTERNAL, "failed to render document: %v", err)
	}

	return &knacks.ParsedDocument{
		HTML:     strings.TrimSpace(out),
		Headings: headings,
	}, nil
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3,
	atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// headingLevel returns 1-6 for h1-h6 and 0 for anything else.
func headingLevel(a atom.Atom) int {
	return headingLevels[a]
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
