package worker

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestCategoryURLs(t *testing.T) {
	const page = `
	<html><body>
		<a href="/markets/">Markets</a>
		<a href="/markets/">Markets again</a>
		<a href="https://www.example.com/investing/?utm=x#top">Investing</a>
		<a href="/articles/2024/deep/path">Article</a>
		<a href="https://other.example.org/markets/">Elsewhere</a>
		<a href="mailto:editor@example.com">Mail</a>
		<a href="/">Home</a>
	</body></html>`

	source, err := url.Parse("https://www.example.com/")
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	got := categoryURLs(doc, source)
	assert.Equal(t, []string{
		"https://www.example.com/investing",
		"https://www.example.com/markets",
	}, got)
}

func TestCategoryURLRejectsForeignAndDeepLinks(t *testing.T) {
	source, err := url.Parse("https://www.example.com/")
	require.NoError(t, err)

	for _, href := range []string{
		"https://other.example.org/markets/",
		"/a/b",
		"/",
		"javascript:void(0)",
	} {
		assert.Empty(t, categoryURL(href, source), "href %q", href)
	}

	assert.Equal(t, "https://www.example.com/markets", categoryURL("/markets/", source))
}
