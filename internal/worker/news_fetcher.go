package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/arco-app/backend/internal/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/html"
)

// TopNewsCacheKey holds the latest fetched category URLs as a JSON array.
const TopNewsCacheKey = "news:top"

type newsFetcher struct {
	redis  redis.UniversalClient
	client *http.Client
	config config.NewsConfig
}

func newNewsFetcher(redisClient redis.UniversalClient, cfg config.NewsConfig) *newsFetcher {
	return &newsFetcher{
		redis:  redisClient,
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}

// FetchTopNews pulls the configured news source page, collects its category
// URLs and caches them for the blog endpoint.
func (f *newsFetcher) FetchTopNews(ctx context.Context) error {
	source, err := url.Parse(f.config.SourceURL)
	if err != nil {
		return errors.Wrap(err, "parse news source url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.config.SourceURL, nil)
	if err != nil {
		return errors.Wrap(err, "build news source request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "fetch news source")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("news source returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return errors.Wrap(err, "parse news source html")
	}

	categories := categoryURLs(doc, source)

	payload, err := json.Marshal(categories)
	if err != nil {
		return errors.Wrap(err, "marshal category urls")
	}

	if err := f.redis.Set(ctx, TopNewsCacheKey, payload, f.config.CacheTTL).Err(); err != nil {
		return errors.Wrap(err, "cache category urls")
	}

	return nil
}

// categoryURLs walks the document and keeps same-host links that look like
// section fronts: a single non-empty path segment.
func categoryURLs(doc *html.Node, source *url.URL) []string {
	seen := make(map[string]struct{})

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if u := categoryURL(attr.Val, source); u != "" {
					seen[u] = struct{}{}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	categories := make([]string, 0, len(seen))
	for u := range seen {
		categories = append(categories, u)
	}
	sort.Strings(categories)

	return categories
}

func categoryURL(href string, source *url.URL) string {
	u, err := source.Parse(href)
	if err != nil {
		return ""
	}
	if u.Host != source.Host || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}

	path := strings.Trim(u.Path, "/")
	if path == "" || strings.Contains(path, "/") {
		return ""
	}

	u.RawQuery = ""
	u.Fragment = ""

	return u.String()
}
