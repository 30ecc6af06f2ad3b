package advent

// Article is one top-level <article> block of a puzzle page. The first
// article is the base problem; a second one appears once part one is solved.
type Article struct {
	// HTML is the outer markup of the article element.
	HTML string

	// Example is the outer markup of the first <pre><code> element inside
	// the article, or empty when the article has none.
	Example string
}

// HasExample reports whether the article embeds a code sample.
func (a *Article) HasExample() bool {
	return a.Example != ""
}

// ArticleExtractor splits a puzzle page into its article blocks.
type ArticleExtractor interface {
	// ExtractArticles returns the top-level articles in document order.
	// A page without articles yields an empty slice and no error.
	ExtractArticles(html string) ([]*Article, error)
}
