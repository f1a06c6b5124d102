package mock

import "github.com/pbartosik/wolref"

var _ wolref.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of wolref.TextExtractor.
type TextExtractor struct {
	ExtractFn func(kind wolref.Kind, content string) (string, error)
}

func (e *TextExtractor) Extract(kind wolref.Kind, content string) (string, error) {
	return e.ExtractFn(kind, content)
}

var _ wolref.Converter = (*Converter)(nil)

// Converter is a mock implementation of wolref.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
