package advent_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/advent"
	"github.com/fwojciec/advent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single tag pair", input: "<code>12, 34</code>", want: "12, 34"},
		{name: "nested tags keep entities", input: "<pre><code>a &lt; b</code></pre>", want: "a &lt; b"},
		{name: "tags with attributes", input: `<code class="x">1<em title="y">2</em></code>`, want: "12"},
		{name: "multiline content", input: "<code>1\n2\n3\n</code>", want: "1\n2\n3\n"},
		{name: "no tags", input: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, advent.StripTags(tt.input))
		})
	}
}

func TestRenderExample(t *testing.T) {
	t.Parallel()

	t.Run("strips tags from fragment", func(t *testing.T) {
		t.Parallel()

		article := &advent.Article{HTML: "<article></article>", Example: "<code>1\n<em>2</em>\n</code>"}

		ex, ok := advent.RenderExample(article, 2)

		require.True(t, ok)
		assert.Equal(t, 2, ex.Index)
		assert.Equal(t, "1\n2\n", ex.Content)
	})

	t.Run("reports missing fragment", func(t *testing.T) {
		t.Parallel()

		ex, ok := advent.RenderExample(&advent.Article{HTML: "<article></article>"}, 1)

		assert.False(t, ok)
		assert.Nil(t, ex)
	})
}

func TestRenderProblem(t *testing.T) {
	t.Parallel()

	t.Run("joins articles in order", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return html + "\n", nil
			},
		}
		articles := []*advent.Article{{HTML: "Part One"}, {HTML: "Part Two"}}

		got, err := advent.RenderProblem(conv, articles)

		require.NoError(t, err)
		assert.Equal(t, "Part One\n\nPart Two\n", got)
	})

	t.Run("returns empty document without articles", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				t.Fatal("converter should not be called")
				return "", nil
			},
		}

		got, err := advent.RenderProblem(conv, nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("propagates converter error", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("convert failed")
			},
		}

		_, err := advent.RenderProblem(conv, []*advent.Article{{HTML: "<article/>"}})

		require.Error(t, err)
	})
}
