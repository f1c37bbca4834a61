// Copyright 2025 The Carvisor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package news implements the automotive news flow: a web (or mock)
// search scoped to car topics, a per-article YES/NO relevance check, and
// Vietnamese-formatted output.
package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carvisor/carvisor/ai"
)

const relevancePrompt = `Bạn là trợ lý chuyên gia về ô tô.

Công việc của bạn là đánh giá xem một bài báo có liên quan trực tiếp đến câu hỏi của người dùng về xe hơi, ô tô, xu hướng ô tô, mẫu xe, an toàn, giá cả, tính năng, hoặc cập nhật ngành hay không.

Xem xét tiêu đề tin tức, nội dung và câu hỏi của người dùng.

Nếu tin tức trả lời rõ ràng hoặc cung cấp thông tin có giá trị liên quan đến câu hỏi của người dùng, hãy trả lời:
YES

Nếu tin tức không liên quan trực tiếp hoặc chỉ đề cập mơ hồ đến các chủ đề liên quan, hãy trả lời:
NO

Chỉ trả lời YES hoặc NO.`

const (
	noArticlesResponse   = "⚠️ No usable news articles found."
	noRelevantResponse   = "⚠️ Không tìm thấy tin tức liên quan đến câu hỏi của bạn về ô tô."
	emptyQuestionMessage = "⚠️ No question provided for news search."
)

// Article is a single news item.
type Article struct {
	Title   string
	URL     string
	Content string
}

// Searcher finds news articles for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Article, error)
}

// Handler runs the news search flow.
type Handler struct {
	searcher Searcher
	chatter  ai.Chatter
	logger   *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger.With("component", "news")
	}
}

// NewHandler creates a news Handler. The chatter performs the per-article
// relevance check; pass a MockSearcher for degraded/demo mode.
func NewHandler(searcher Searcher, chatter ai.Chatter, opts ...Option) *Handler {
	h := &Handler{
		searcher: searcher,
		chatter:  chatter,
		logger:   slog.Default().With("component", "news"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Respond searches for automotive news about the question and returns
// formatted headlines. Never returns an error: every failure path yields
// a user-visible string.
func (h *Handler) Respond(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return emptyQuestionMessage
	}

	query := fmt.Sprintf("Latest automotive news about: %s", question)
	articles, err := h.searcher.Search(ctx, query)
	if err != nil {
		h.logger.Error("news search failed", "error", err)
		return fmt.Sprintf("⚠️ Không thể tìm kiếm tin tức: %v", err)
	}
	if len(articles) == 0 {
		return noArticlesResponse
	}

	h.logger.Info("checking article relevance", "articles", len(articles))

	var relevant []Article
	for _, article := range articles {
		ok, err := h.isRelevant(ctx, question, article)
		if err != nil {
			h.logger.Warn("relevance check failed, skipping article",
				"title", article.Title, "error", err)
			continue
		}
		if ok {
			relevant = append(relevant, article)
		}
	}

	if len(relevant) == 0 {
		return noRelevantResponse
	}

	return formatArticles(relevant)
}

// isRelevant asks the model for a binary relevance verdict.
func (h *Handler) isRelevant(ctx context.Context, question string, article Article) (bool, error) {
	check := fmt.Sprintf(`You are a helpful assistant checking news relevance.

User question:
%q

News title:
%q

News content:
%q

Is this news relevant to the user's question? Reply with YES or NO.`,
		question, article.Title, article.Content)

	resp, err := h.chatter.Chat(ctx, []ai.Message{
		ai.SystemMessage(relevancePrompt),
		ai.HumanMessage(check),
	}, ai.WithTemperature(0))
	if err != nil {
		return false, err
	}
	return strings.ToUpper(strings.TrimSpace(resp.Content)) == "YES", nil
}

// formatArticles renders the Vietnamese headline list.
func formatArticles(articles []Article) string {
	var b strings.Builder
	b.WriteString("📰 **Tin tức ô tô mới nhất:**\n\n")

	parts := make([]string, 0, len(articles))
	for _, article := range articles {
		content := article.Content
		if len(content) > 300 {
			content = truncateRunes(content, 300) + "..."
		}
		part := fmt.Sprintf("### 📄 %s\n%s", article.Title, content)
		if article.URL != "" {
			part += fmt.Sprintf("\n[🔗 Đọc thêm](%s)", article.URL)
		}
		parts = append(parts, part)
	}
	b.WriteString(strings.Join(parts, "\n\n"))
	return b.String()
}

// truncateRunes cuts at a rune boundary so multi-byte text stays valid.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
