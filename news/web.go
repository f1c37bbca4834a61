package news

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// HTML parsing patterns for the DuckDuckGo HTML endpoint, compiled once.
var (
	ddgTitleRegex   = regexp.MustCompile(`(?s)<a[^>]+class="result__a"[^>]+href="([^"]+)"[^>]*>(.+?)</a>`)
	ddgSnippetRegex = regexp.MustCompile(`(?s)<a[^>]+class="result__snippet"[^>]*>(.+?)</a>`)

	ddgTagRegex        = regexp.MustCompile(`<[^>]*>`)
	ddgWhitespaceRegex = regexp.MustCompile(`\s+`)
)

const (
	defaultBaseURL    = "https://html.duckduckgo.com/html/"
	defaultMaxResults = 5
	defaultTimeout    = 15 * time.Second
	defaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// WebSearcher performs live news search against the DuckDuckGo HTML
// endpoint. No API key required.
type WebSearcher struct {
	baseURL    string
	maxResults int
	timeout    time.Duration
	userAgent  string
	client     *http.Client
}

var _ Searcher = (*WebSearcher)(nil)

// WebOption configures a WebSearcher.
type WebOption func(*WebSearcher)

// WithBaseURL overrides the search endpoint (used in tests).
func WithBaseURL(baseURL string) WebOption {
	return func(s *WebSearcher) {
		s.baseURL = baseURL
	}
}

// WithMaxResults caps the number of returned articles (1-10).
func WithMaxResults(n int) WebOption {
	return func(s *WebSearcher) {
		if n < 1 {
			n = 1
		}
		if n > 10 {
			n = 10
		}
		s.maxResults = n
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) WebOption {
	return func(s *WebSearcher) {
		s.timeout = timeout
	}
}

// NewWebSearcher creates a live DuckDuckGo searcher.
func NewWebSearcher(opts ...WebOption) *WebSearcher {
	s := &WebSearcher{
		baseURL:    defaultBaseURL,
		maxResults: defaultMaxResults,
		timeout:    defaultTimeout,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.client = &http.Client{
		Timeout: s.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return errors.New("too many redirects")
			}
			return nil
		},
	}
	return s
}

// Search queries DuckDuckGo and parses the result page into articles.
func (s *WebSearcher) Search(ctx context.Context, query string) ([]Article, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	searchURL := s.baseURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned HTTP %d", resp.StatusCode)
	}

	// Cap the body read at 5MB
	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, err
	}

	articles := parseResultPage(string(body))
	if len(articles) > s.maxResults {
		articles = articles[:s.maxResults]
	}
	return articles, nil
}

// parseResultPage extracts articles from DuckDuckGo result HTML.
func parseResultPage(page string) []Article {
	var articles []Article

	titleMatches := ddgTitleRegex.FindAllStringSubmatch(page, 30)
	snippetMatches := ddgSnippetRegex.FindAllStringSubmatch(page, 30)

	for i, match := range titleMatches {
		if len(match) < 3 {
			continue
		}

		rawURL := strings.ReplaceAll(match[1], "&amp;", "&")
		actualURL := extractActualURL(rawURL)
		if actualURL == "" {
			continue
		}

		title := strings.TrimSpace(cleanHTML(match[2]))
		if title == "" {
			continue
		}

		content := "No detailed content available."
		if i < len(snippetMatches) && len(snippetMatches[i]) >= 2 {
			if snippet := strings.TrimSpace(cleanHTML(snippetMatches[i][1])); snippet != "" {
				content = snippet
			}
		}

		articles = append(articles, Article{
			Title:   title,
			URL:     actualURL,
			Content: content,
		})
	}

	return articles
}

// extractActualURL unwraps DuckDuckGo's redirect URL.
// Format: //duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com
func extractActualURL(ddgURL string) string {
	if strings.Contains(ddgURL, "uddg=") {
		if strings.HasPrefix(ddgURL, "//") {
			ddgURL = "https:" + ddgURL
		}
		parsed, err := url.Parse(ddgURL)
		if err != nil {
			return ""
		}
		if target := parsed.Query().Get("uddg"); target != "" {
			return target
		}
	}

	if strings.HasPrefix(ddgURL, "http://") || strings.HasPrefix(ddgURL, "https://") {
		return ddgURL
	}
	return ""
}

// cleanHTML strips tags, decodes entities, and collapses whitespace.
func cleanHTML(fragment string) string {
	text := ddgTagRegex.ReplaceAllString(fragment, "")
	text = html.UnescapeString(text)
	text = ddgWhitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
