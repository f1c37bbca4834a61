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


// Package intent routes free-text questions to one of the specialized
// handlers. Classification is a single LLM call constrained to a closed
// label set; anything unrecognized resolves to document retrieval.
package intent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/core"
)

const classifierPrompt = `Bạn là một trợ lý AI chuyên về ô tô và xe hơi tại Việt Nam. Bạn chỉ được trả lời các câu hỏi liên quan đến:
- Tư vấn mua xe, gợi ý xe phù hợp
- Thông tin kỹ thuật về xe ô tô
- Tin tức về ngành ô tô
- Bảo dưỡng và sửa chữa xe
- So sánh các dòng xe

QUAN TRỌNG: Nếu câu hỏi KHÔNG liên quan đến ô tô, xe hơi, hoặc giao thông, hãy trả lời "INVALID_QUESTION".

Các agent có sẵn:
- recommendation: Car recommendation and buying advice
- retrieve_docs: Document retrieval and knowledge base search
- search_news: News search and current events

Phân loại câu hỏi của người dùng thành một trong các loại:
- recommendation (tư vấn mua xe, gợi ý xe, so sánh xe)
- retrieve_docs (tìm kiếm thông tin, tài liệu về xe)
- search_news (tin tức về ô tô, xu hướng mới)
- INVALID_QUESTION (câu hỏi không liên quan đến ô tô)

Chỉ trả lời tên agent (recommendation/retrieve_docs/search_news/INVALID_QUESTION).`

// keyword hints used when the LLM call itself fails. Checked in order so
// the fallback stays deterministic.
var intentKeywords = []struct {
	intent core.Intent
	words  []string
}{
	{core.IntentRecommendation, []string{"recommend", "buy", "purchase", "budget", "gợi ý", "tư vấn", "mua xe", "nên mua"}},
	{core.IntentSearchNews, []string{"news", "latest", "update", "recent", "breaking", "tin tức", "mới nhất", "xu hướng"}},
}

// Classifier classifies questions into handler intents.
type Classifier struct {
	chatter ai.Chatter
	logger  *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger.With("component", "intent")
	}
}

// NewClassifier creates a Classifier backed by the given chatter.
func NewClassifier(chatter ai.Chatter, opts ...Option) *Classifier {
	c := &Classifier{
		chatter: chatter,
		logger:  slog.Default().With("component", "intent"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify determines the intent of a question.
// Never returns an error: unrecognized labels fall back to
// core.DefaultIntent, and an LLM failure falls back to a keyword
// heuristic.
func (c *Classifier) Classify(ctx context.Context, question string) core.Intent {
	resp, err := c.chatter.Chat(ctx, []ai.Message{
		ai.SystemMessage(classifierPrompt),
		ai.HumanMessage(question),
	}, ai.WithTemperature(0))
	if err != nil {
		c.logger.Error("classification call failed, using keyword fallback", "error", err)
		return classifyByKeywords(question)
	}

	label := core.Intent(strings.ToLower(strings.TrimSpace(resp.Content)))

	if label == core.IntentInvalidQuestion {
		c.logger.Info("blocked off-topic question", "question", truncate(question, 50))
		return core.IntentInvalidQuestion
	}

	if !core.ValidIntent(label) {
		c.logger.Warn("unknown intent label, using default", "label", string(label))
		return core.DefaultIntent
	}

	c.logger.Info("classified intent", "intent", string(label), "question", truncate(question, 50))
	return label
}

// classifyByKeywords is the degraded-mode classifier.
func classifyByKeywords(question string) core.Intent {
	lower := strings.ToLower(question)
	for _, group := range intentKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.intent
			}
		}
	}
	return core.DefaultIntent
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
