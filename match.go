package knacks

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxResults bounds the number of matches returned for one query.
	MaxResults = 50

	// SnippetLength is the width, in characters, of the snippet window.
	SnippetLength = 50
)

// MatchResult is a single search hit.
type MatchResult struct {
	File    string `json:"file"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Search returns the entries whose normalized text contains the normalized
// query, in index order, stopping after MaxResults matches. An empty or
// whitespace-only query matches nothing.
func Search(query string, index []*IndexEntry) []MatchResult {
	q := Normalize(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []MatchResult
	for _, e := range index {
		if e == nil || !strings.Contains(e.NormalizedText, q) {
			continue
		}
		matches = append(matches, MatchResult{
			File:    e.File,
			Title:   e.Title,
			Snippet: Snippet(e.Text, q),
		})
		if len(matches) >= MaxResults {
			break
		}
	}
	return matches
}

// Snippet extracts the excerpt shown under a match. The position of the
// first occurrence of normalizedQuery in Normalize(text) is applied, in
// characters, to the raw text; from there SnippetLength characters are
// taken, trimmed, and whitespace runs are collapsed to a single space.
// It returns "" when text has no occurrence.
func Snippet(text, normalizedQuery string) string {
	if text == "" || normalizedQuery == "" {
		return ""
	}

	normalized := Normalize(text)
	i := strings.Index(normalized, normalizedQuery)
	if i < 0 {
		return ""
	}

	// The offset is measured in the normalized string and reused on the raw
	// one, so it can drift when normalization changes the character count.
	pos := utf8.RuneCountInString(normalized[:i])
	raw := []rune(text)
	if pos >= len(raw) {
		return ""
	}
	end := min(pos+SnippetLength, len(raw))

	return strings.Join(strings.Fields(string(raw[pos:end])), " ")
}
