package helpsearch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// Client клиент HTML-поиска DuckDuckGo с ограничением частоты запросов
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *Cache
}

// ClientConfig конфигурация поискового клиента
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit rate.Limit
	Cache     *Cache
}

// NewClient создает новый поисковый клиент
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://html.duckduckgo.com/html"
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = rate.Every(time.Second) // 1 запрос в секунду
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(config.RateLimit, 1),
		cache:   config.Cache,
	}
}

// Search выполняет HTML-поиск и возвращает разобранные результаты
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	cacheKey := generateCacheKey(query)
	if c.cache != nil {
		if cached, found := c.cache.Get(cacheKey); found {
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	searchURL := fmt.Sprintf("%s/?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	result, err := parseResults(resp.Body, query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(cacheKey, result)
	}
	return result, nil
}

// parseResults разбирает HTML-страницу результатов поиска.
// DuckDuckGo помечает результаты классом "result", заголовок — ссылкой с
// классом "result__a", сниппет — классом "result__snippet".
func parseResults(body io.Reader, query string) (*SearchResult, error) {
	doc, err := html.Parse(body)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Query:     query,
		Source:    "duckduckgo-html",
		Timestamp: time.Now(),
		Results:   make([]SearchItem, 0),
	}
	extractResults(doc, result)
	result.Found = len(result.Results) > 0
	return result, nil
}

func extractResults(n *html.Node, result *SearchResult) {
	if n.Type == html.ElementNode && hasClass(n, "result") {
		if item := extractItem(n); item != nil && item.URL != "" {
			result.Results = append(result.Results, *item)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		extractResults(child, result)
	}
}

func extractItem(n *html.Node) *SearchItem {
	item := &SearchItem{}
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch {
			case node.Data == "a" && hasClass(node, "result__a"):
				item.Title = textContent(node)
				item.URL = cleanResultURL(attr(node, "href"))
			case hasClass(node, "result__snippet"):
				if item.Snippet == "" {
					item.Snippet = textContent(node)
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return item
}

// cleanResultURL раскрывает redirect-ссылки DuckDuckGo вида
// //duckduckgo.com/l/?uddg=<escaped-url>
func cleanResultURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "uddg=") {
		if u, err := url.Parse(raw); err == nil {
			if target := u.Query().Get("uddg"); target != "" {
				return target
			}
		}
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class || strings.HasPrefix(c, class+"--") {
					return true
				}
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func generateCacheKey(query string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(query)))
	return hex.EncodeToString(hash[:])
}
