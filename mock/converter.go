package mock

import "github.com/redsepro/knacks"

var _ knacks.Converter = (*Converter)(nil)

// Converter is a mock implementation of knacks.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
