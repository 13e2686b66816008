// Package helpsearch ищет help-статьи конкурентов через DuckDuckGo, когда
// AI-анализ не дал готовой ссылки на документацию. Неудача поиска всегда
// молчаливая: у вызывающего остаётся синтезированный поисковый запрос.
package helpsearch

import "time"

// SearchItem один результат поиска
type SearchItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// SearchResult результат поискового запроса
type SearchResult struct {
	Query     string       `json:"query"`
	Found     bool         `json:"found"`
	Results   []SearchItem `json:"results"`
	Source    string       `json:"source"`
	Timestamp time.Time    `json:"timestamp"`
}

// ResolvedLink найденная ссылка на help-статью конкурента
type ResolvedLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
