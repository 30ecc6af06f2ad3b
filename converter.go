package advent

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is typically the markup of a single Article.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
