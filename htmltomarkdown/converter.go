// Package htmltomarkdown renders sanitized knack HTML as Markdown for the
// terminal content pane.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/redsepro/knacks"
)

// Ensure Converter implements knacks.Converter at compile time.
var _ knacks.Converter = (*Converter)(nil)

// DefaultRemovedTags are dropped with their content before conversion.
// Knack pages embed copy buttons next to code blocks; their labels are
// noise in a terminal.
var DefaultRemovedTags = []string{"button", "script", "style", "noscript"}

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv        *converter.Converter
	removedTags []string
}

// Option configures a Converter.
type Option func(*Converter)

// WithRemovedTags replaces the list of tags dropped before conversion.
func WithRemovedTags(tags ...string) Option {
	return func(c *Converter) {
		c.removedTags = tags
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{removedTags: DefaultRemovedTags}
	for _, opt := range opts {
		opt(c)
	}

	c.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
			table.NewTablePlugin(),
		),
	)
	for _, tag := range c.removedTags {
		c.conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}

	return c
}

// Convert transforms HTML content into Markdown with ATX headings, so that
// every heading occupies exactly one line starting with '#'.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", knacks.Errorf(knacks.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", knacks.Errorf(knacks.EINTERNAL, "failed to convert document: %v", err)
	}

	return strings.TrimSpace(result), nil
}
