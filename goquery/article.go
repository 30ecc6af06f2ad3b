// Package goquery implements HTML extraction for puzzle pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/advent"
	"golang.org/x/net/html"
)

// Ensure ArticleExtractor implements advent.ArticleExtractor at compile time.
var _ advent.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor finds the article blocks of a puzzle page.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// ExtractArticles returns every top-level article element in document order.
// Each article's Example holds the markup of its first "pre code" element,
// if any. A page with no articles returns an empty slice.
func (e *ArticleExtractor) ExtractArticles(page string) ([]*advent.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, advent.Errorf(advent.EINVALID, "failed to parse HTML: %v", err)
	}

	articles := []*advent.Article{}
	var extractErr error

	doc.Find("article").
		FilterFunction(func(_ int, sel *goquery.Selection) bool {
			return sel.ParentsFiltered("article").Length() == 0
		}).
		EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			markup, err := goquery.OuterHtml(sel)
			if err != nil {
				extractErr = err
				return false
			}

			article := &advent.Article{HTML: markup}

			// Missing samples are normal for prose-only articles
			if code := sel.Find("pre code").First(); code.Length() > 0 {
				article.Example = renderFragment(code.Get(0))
			}

			articles = append(articles, article)
			return true
		})

	if extractErr != nil {
		return nil, advent.Errorf(advent.EINVALID, "failed to render article: %v", extractErr)
	}

	return articles, nil
}

// textEscaper escapes &, < and > only; quotes stay as they appear on the page.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// renderFragment serializes n and its subtree with minimal escaping.
func renderFragment(n *html.Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(textEscaper.Replace(n.Data))
	case html.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case html.ElementNode:
		b.WriteString("<")
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteString(" ")
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(textEscaper.Replace(a.Val))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteString(">")
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c)
		}
	}
}
