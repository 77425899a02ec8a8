package knacks

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// IndexEntry is one document of the search index.
type IndexEntry struct {
	File  string `json:"file"`
	Title string `json:"title"`
	Text  string `json:"text"`

	// NormalizedText is the normalized concatenation of Title and Text.
	// It is set once by Annotate when the index is loaded.
	NormalizedText string `json:"-"`
}

// Annotate computes NormalizedText from the title and text, joined by a
// single space even when either is empty.
func (e *IndexEntry) Annotate() {
	e.NormalizedText = Normalize(e.Title + " " + e.Text)
}

// UnmarshalJSON reads an entry without validating its schema. String fields
// are taken as is, numbers and booleans by their literal text, and anything
// else (absent, null, objects, arrays) as the empty string.
func (e *IndexEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.File = looseString(raw["file"])
	e.Title = looseString(raw["title"])
	e.Text = looseString(raw["text"])
	return nil
}

func looseString(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return ""
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return strings.TrimSpace(string(v))
	}
}

// ParseIndex decodes an index resource: a JSON array of entries. Every entry
// is annotated before it is returned. A null element makes the whole payload
// malformed.
func ParseIndex(data []byte) ([]*IndexEntry, error) {
	var entries []*IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, Errorf(EINVALID, "malformed index: %v", err)
	}
	for i, e := range entries {
		if e == nil {
			return nil, Errorf(EINVALID, "malformed index: entry %d is null", i)
		}
		e.Annotate()
	}
	return entries, nil
}

// IndexLoader provides the process-wide search index.
type IndexLoader interface {
	// Load returns the cached index, fetching it on first use. It never
	// fails: an unavailable index is reported as an empty one.
	Load(ctx context.Context) []*IndexEntry
}
