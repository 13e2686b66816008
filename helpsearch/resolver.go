package helpsearch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// SearchClient интерфейс поискового клиента (для подмены в тестах)
type SearchClient interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}

// Resolver находит ссылку на help-статью конкурента по поисковому запросу
type Resolver struct {
	client     SearchClient
	httpClient *http.Client
}

// NewResolver создает новый resolver
func NewResolver(client SearchClient) *Resolver {
	return &Resolver{
		client:     client,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Resolve ищет help-статью по запросу. Результат с домена, похожего на домен
// конкурента, предпочитается первому попавшемуся. Возвращает nil без ошибки,
// когда ничего подходящего не нашлось.
func (r *Resolver) Resolve(ctx context.Context, competitorName, searchQuery string) (*ResolvedLink, error) {
	result, err := r.client.Search(ctx, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if !result.Found {
		return nil, nil
	}

	item := pickResult(result.Results, competitorName)
	if item == nil {
		return nil, nil
	}

	link := &ResolvedLink{Title: item.Title, URL: item.URL}

	// Заголовок страницы надежнее заголовка сниппета, но его отсутствие не
	// отменяет найденную ссылку
	if title := r.fetchPageTitle(ctx, item.URL); title != "" {
		link.Title = title
	}
	return link, nil
}

// pickResult выбирает лучший результат: сперва ссылки с домена конкурента,
// иначе первый результат со схемой https
func pickResult(items []SearchItem, competitorName string) *SearchItem {
	token := domainToken(competitorName)

	for i := range items {
		u, err := url.Parse(items[i].URL)
		if err != nil || u.Scheme != "https" {
			continue
		}
		if token != "" && strings.Contains(strings.ToLower(u.Hostname()), token) {
			return &items[i]
		}
	}
	for i := range items {
		if u, err := url.Parse(items[i].URL); err == nil && u.Scheme == "https" {
			return &items[i]
		}
	}
	return nil
}

// domainToken приводит имя конкурента к токену для сравнения с хостом:
// "SAP SuccessFactors" -> "successfactors"
func domainToken(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// fetchPageTitle загружает страницу и извлекает содержимое тега <title>.
// Любая ошибка дает пустую строку: заголовок — это улучшение, не требование.
func (r *Resolver) fetchPageTitle(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; featureboard/1.0)")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("Help page fetch failed for %s: %v", pageURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
