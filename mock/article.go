package mock

import "github.com/fwojciec/advent"

var _ advent.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of advent.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticlesFn func(html string) ([]*advent.Article, error)
}

func (e *ArticleExtractor) ExtractArticles(html string) ([]*advent.Article, error) {
	return e.ExtractArticlesFn(html)
}
