package goquery_test

import (
	"testing"

	"github.com/fwojciec/advent"
	"github.com/fwojciec/advent/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ArticleExtractor implements advent.ArticleExtractor at compile time.
var _ advent.ArticleExtractor = (*goquery.ArticleExtractor)(nil)

func TestArticleExtractor_ExtractArticles(t *testing.T) {
	t.Parallel()

	t.Run("returns articles in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<main>
<article class="day-desc"><h2>--- Day 1: Trebuchet?! ---</h2><p>Part A</p><pre><code>1abc2
pqr3stu8vwx
</code></pre></article>
<p>Your puzzle answer was <code>142</code>.</p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2><p>Part B</p></article>
</main>
</body>
</html>`

		articles, err := goquery.NewArticleExtractor().ExtractArticles(html)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Contains(t, articles[0].HTML, "Part A")
		assert.Contains(t, articles[0].HTML, "<article")
		assert.Contains(t, articles[1].HTML, "Part B")
	})

	t.Run("locates code sample per article", func(t *testing.T) {
		t.Parallel()

		html := `<article><p>A</p></article><article><p>B</p><pre><code>x &lt; y</code></pre></article>`

		articles, err := goquery.NewArticleExtractor().ExtractArticles(html)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.False(t, articles[0].HasExample())
		assert.True(t, articles[1].HasExample())
		assert.Equal(t, "<code>x &lt; y</code>", articles[1].Example)
	})

	t.Run("uses first code sample only", func(t *testing.T) {
		t.Parallel()

		html := `<article><pre><code>first</code></pre><pre><code>second</code></pre></article>`

		articles, err := goquery.NewArticleExtractor().ExtractArticles(html)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "<code>first</code>", articles[0].Example)
	})

	t.Run("ignores inline code outside pre", func(t *testing.T) {
		t.Parallel()

		html := `<article><p>The answer is <code>42</code>.</p></article>`

		articles, err := goquery.NewArticleExtractor().ExtractArticles(html)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.False(t, articles[0].HasExample())
	})

	t.Run("skips nested articles", func(t *testing.T) {
		t.Parallel()

		html := `<article><p>outer</p><article><p>inner</p></article></article>`

		articles, err := goquery.NewArticleExtractor().ExtractArticles(html)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Contains(t, articles[0].HTML, "inner")
	})

	t.Run("returns empty slice when page has no articles", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Please log in to get your puzzle input.</p></body></html>`

		articles, err := goquery.NewArticleExtractor().ExtractArticles(html)

		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestArticleExtractor_WithStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips emphasis inside sample",
			html: `<article><pre><code>467..114..
...*......
<em>35</em>..633.
</code></pre></article>`,
			want: "467..114..\n...*......\n35..633.\n",
		},
		{
			name: "keeps quotes and apostrophes verbatim",
			html: `<article><pre><code>""
"abc"
"aaa\"aaa"
"\x27"
it's
</code></pre></article>`,
			want: "\"\"\n\"abc\"\n\"aaa\\\"aaa\"\n\"\\x27\"\nit's\n",
		},
		{
			name: "keeps page entities escaped",
			html: `<article><pre><code>a &lt; b &amp;&amp; c &gt; d</code></pre></article>`,
			want: "a &lt; b &amp;&amp; c &gt; d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			articles, err := goquery.NewArticleExtractor().ExtractArticles(tt.html)
			require.NoError(t, err)
			require.Len(t, articles, 1)

			ex, ok := advent.RenderExample(articles[0], 1)

			require.True(t, ok)
			assert.Equal(t, tt.want, ex.Content)
		})
	}
}
