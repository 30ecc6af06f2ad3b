// Package htmltomarkdown renders puzzle article markup as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/advent"
)

// Ensure Converter implements advent.Converter at compile time.
var _ advent.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert article HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links such as "/2023/day/1/input" against
// the puzzle site so the saved problem links back to it. By default links
// are kept as written.
func WithDomain(baseURL string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimSuffix(baseURL, "/")
	}
}

// NewConverter creates a new Converter. Some puzzles present data in
// tables, so the table plugin is enabled alongside CommonMark.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	c.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return c
}

// Convert transforms one article's markup into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", advent.Errorf(advent.EINVALID, "empty article markup")
	}

	var result string
	var err error
	if c.domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", advent.Errorf(advent.EINVALID, "failed to convert article: %v", err)
	}

	return result, nil
}
