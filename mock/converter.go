package mock

import "github.com/fwojciec/advent"

var _ advent.Converter = (*Converter)(nil)

// Converter is a mock implementation of advent.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
