package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond_MockHeadlines(t *testing.T) {
	chatter := mock.NewMockChatter()
	for range 3 {
		chatter.EnqueueContent("YES")
	}
	handler := NewHandler(NewMockSearcher(), chatter)

	answer := handler.Respond(context.Background(), "tin tức xe điện")
	assert.Contains(t, answer, "Tin tức ô tô mới nhất")
	assert.Contains(t, answer, "Electric vehicle sales surge 25%")
	assert.Contains(t, answer, "Toyota announces new hybrid models for 2026")
}

func TestRespond_RelevanceFilter(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.EnqueueContent("YES")
	chatter.EnqueueContent("NO")
	chatter.EnqueueContent("no")
	handler := NewHandler(NewMockSearcher(), chatter)

	answer := handler.Respond(context.Background(), "doanh số xe điện")
	assert.Contains(t, answer, "Electric vehicle sales")
	assert.NotContains(t, answer, "hybrid models")
	assert.NotContains(t, answer, "EV maintenance")
}

func TestRespond_NoRelevantNews(t *testing.T) {
	chatter := mock.NewMockChatter()
	for range 3 {
		chatter.EnqueueContent("NO")
	}
	handler := NewHandler(NewMockSearcher(), chatter)

	answer := handler.Respond(context.Background(), "giá xăng hôm nay")
	assert.Equal(t, noRelevantResponse, answer)
}

func TestRespond_EmptyQuestion(t *testing.T) {
	handler := NewHandler(NewMockSearcher(), mock.NewMockChatter())
	assert.Equal(t, emptyQuestionMessage, handler.Respond(context.Background(), "   "))
}

type failingSearcher struct{}

func (failingSearcher) Search(ctx context.Context, query string) ([]Article, error) {
	return nil, errors.New("network down")
}

type emptySearcher struct{}

func (emptySearcher) Search(ctx context.Context, query string) ([]Article, error) {
	return nil, nil
}

func TestRespond_SearchFailure(t *testing.T) {
	handler := NewHandler(failingSearcher{}, mock.NewMockChatter())

	answer := handler.Respond(context.Background(), "xe mới")
	assert.Contains(t, answer, "Không thể tìm kiếm tin tức")
	assert.Contains(t, answer, "network down")
}

func TestRespond_NoArticles(t *testing.T) {
	handler := NewHandler(emptySearcher{}, mock.NewMockChatter())
	assert.Equal(t, noArticlesResponse, handler.Respond(context.Background(), "xe mới"))
}

func TestRespond_RelevanceCheckErrorSkipsArticle(t *testing.T) {
	chatter := mock.NewMockChatter()
	calls := 0
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("timeout")
		}
		return &ai.ChatResponse{Content: "YES"}, nil
	}
	handler := NewHandler(NewMockSearcher(), chatter)

	answer := handler.Respond(context.Background(), "xe hybrid")
	// First article dropped by the failed check, the other two kept.
	assert.NotContains(t, answer, "surge 25%")
	assert.Contains(t, answer, "hybrid models")
}

func TestWebSearcher_ParsesResults(t *testing.T) {
	page := `
<div class="result">
  <h2 class="result__title">
    <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fev-news">EV sales <b>hit record</b></a>
  </h2>
  <a class="result__snippet" href="#">Electric vehicle   sales hit a new record in 2025 &amp; beyond.</a>
</div>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "automotive")
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	searcher := NewWebSearcher(WithBaseURL(server.URL + "/"))
	articles, err := searcher.Search(context.Background(), "Latest automotive news about: EVs")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "EV sales hit record", articles[0].Title)
	assert.Equal(t, "https://example.com/ev-news", articles[0].URL)
	assert.Equal(t, "Electric vehicle sales hit a new record in 2025 & beyond.", articles[0].Content)
}

func TestWebSearcher_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	searcher := NewWebSearcher(WithBaseURL(server.URL + "/"))
	_, err := searcher.Search(context.Background(), "anything")
	assert.Error(t, err)
}

func TestWebSearcher_MaxResults(t *testing.T) {
	var page strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&page, `<a class="result__a" href="https://example.com/%d">Result %d</a>`+"\n", i, i)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page.String())
	}))
	defer server.Close()

	searcher := NewWebSearcher(WithBaseURL(server.URL+"/"), WithMaxResults(3))
	articles, err := searcher.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestFormatArticles_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 500)
	out := formatArticles([]Article{{Title: "T", Content: long}})
	assert.Contains(t, out, strings.Repeat("x", 300)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 301))
}
