package knacks

import (
	"regexp"
	"strings"
)

// Heading is a heading of a loaded document.
type Heading struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Title string `json:"title"`

	// Line is the index of the heading in Document.Lines, or -1 when the
	// rendered content has no matching heading line.
	Line int `json:"line"`
}

// TOCItem is a node of the table of contents.
type TOCItem struct {
	Heading  Heading
	Children []*TOCItem
}

// BuildTOC nests headings by level. A heading deeper than the previous one
// opens a child list under the previous item, however many levels it skips.
// A shallower heading climbs back one list per level of difference, never
// above the roots.
func BuildTOC(headings []Heading) []*TOCItem {
	root := &TOCItem{}
	stack := []*TOCItem{root}
	lastLevel := 0

	for _, h := range headings {
		current := stack[len(stack)-1]
		switch {
		case h.Level > lastLevel && len(current.Children) > 0:
			stack = append(stack, current.Children[len(current.Children)-1])
		case h.Level < lastLevel:
			for i := 0; i < lastLevel-h.Level && len(stack) > 1; i++ {
				stack = stack[:len(stack)-1]
			}
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, &TOCItem{Heading: h})
		lastLevel = h.Level
	}

	return root.Children
}

// TOCEntry is a table of contents item flattened for list display.
type TOCEntry struct {
	Depth   int
	Heading Heading
}

// FlattenTOC returns the tree in pre-order with each item's depth.
func FlattenTOC(items []*TOCItem) []TOCEntry {
	var entries []TOCEntry
	var walk func(items []*TOCItem, depth int)
	walk = func(items []*TOCItem, depth int) {
		for _, item := range items {
			entries = append(entries, TOCEntry{Depth: depth, Heading: item.Heading})
			walk(item.Children, depth+1)
		}
	}
	walk(items, 0)
	return entries
}

var (
	headingLineRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)
	fenceRe       = regexp.MustCompile("^\\s*(```|~~~)")
)

// LocateHeadings sets Line on each heading by pairing the headings, in
// order, with the Markdown heading lines of the same level. Lines inside
// fenced code blocks are ignored. Headings that cannot be paired get -1.
func LocateHeadings(lines []string, headings []Heading) {
	next := 0
	inFence := false

	for i := range headings {
		headings[i].Line = -1
	}

	for i, line := range lines {
		if next >= len(headings) {
			return
		}
		if fenceRe.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := headingLineRe.FindStringSubmatch(line)
		if m == nil || len(m[1]) != headings[next].Level {
			continue
		}
		headings[next].Line = i
		next++
	}
}

// SplitLines splits rendered content into display lines.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}
