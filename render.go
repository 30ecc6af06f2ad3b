package advent

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<.*?>`)

// StripTags removes every angle-bracket-delimited run from s.
// Entities such as &lt; are left as they are.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Example is the cleaned sample input of one article.
type Example struct {
	// Index is the 1-based position of the source article on the page.
	Index   int
	Content string
}

// RenderExample returns the example carried by the article at the given
// 1-based index. The second result is false when the article has no sample.
func RenderExample(article *Article, index int) (*Example, bool) {
	if article == nil || !article.HasExample() {
		return nil, false
	}
	return &Example{Index: index, Content: StripTags(article.Example)}, true
}

// RenderProblem converts each article to markdown and joins them in order,
// separated by blank lines. No articles yields an empty document.
func RenderProblem(conv Converter, articles []*Article) (string, error) {
	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		md, err := conv.Convert(a.HTML)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.TrimSpace(md))
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
