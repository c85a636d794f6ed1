package mock

import "github.com/fwojciec/jobhunter"

var _ jobhunter.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobhunter.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
