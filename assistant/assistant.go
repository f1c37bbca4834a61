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


// Package assistant orchestrates the automotive chat flow: intent
// routing, specialized handlers, answer synthesis, and per-session
// conversation state.
//
// Every turn runs the same pipeline: router → one handler → synthesizer.
// The terminal state always yields a non-empty string answer; failures
// surface as user-visible fallback text, never as errors.
package assistant

import (
	"context"
	"log/slog"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/core"
	"github.com/carvisor/carvisor/intent"
	"github.com/carvisor/carvisor/news"
	"github.com/carvisor/carvisor/recommend"
	"github.com/carvisor/carvisor/retrieval"
)

// offTopicResponse is returned for questions outside the automotive
// domain, per the router guardrail.
const offTopicResponse = "🚫 Xin lỗi, tôi chỉ có thể trả lời các câu hỏi liên quan đến ô tô, xe hơi và giao thông. \n\n" +
	"📋 Tôi có thể giúp bạn:\n" +
	"• 🚗 Tư vấn mua xe phù hợp\n" +
	"• 🔧 Thông tin kỹ thuật về xe\n" +
	"• 📰 Tin tức ngành ô tô\n" +
	"• 🛠️ Bảo dưỡng và sửa chữa xe\n" +
	"• ⚖️ So sánh các dòng xe\n\n" +
	"Vui lòng đặt câu hỏi về ô tô để tôi có thể hỗ trợ bạn tốt nhất! 😊"

const notFoundResponse = "I couldn't find relevant information in the knowledge base."

// Turn is the immutable record of one pass through the pipeline. Each
// stage produces a new Turn rather than mutating shared state.
type Turn struct {
	Question    string
	History     []core.Exchange
	Intent      core.Intent
	ContextDocs []*core.SearchResult
	Answer      string
}

// Assistant runs the turn pipeline.
type Assistant struct {
	classifier  *intent.Classifier
	retriever   *retrieval.Retriever
	recommender *recommend.Recommender
	newsHandler *news.Handler
	chatter     ai.Chatter
	sessions    *SessionManager
	logger      *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) {
		a.logger = logger.With("component", "assistant")
	}
}

// NewAssistant wires the pipeline together. The retriever may be nil,
// in which case document questions get the not-found response.
func NewAssistant(
	chatter ai.Chatter,
	retriever *retrieval.Retriever,
	newsSearcher news.Searcher,
	opts ...Option,
) *Assistant {
	a := &Assistant{
		classifier:  intent.NewClassifier(chatter),
		retriever:   retriever,
		recommender: recommend.NewRecommender(chatter),
		newsHandler: news.NewHandler(newsSearcher, chatter),
		chatter:     chatter,
		sessions:    NewSessionManager(),
		logger:      slog.Default().With("component", "assistant"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Sessions exposes the session manager.
func (a *Assistant) Sessions() *SessionManager {
	return a.sessions
}

// Process runs one turn for the given session. Always returns a
// non-empty answer; no failure propagates to the caller.
func (a *Assistant) Process(ctx context.Context, sessionID, question string) string {
	session := a.sessions.Get(sessionID)

	turn := Turn{
		Question: question,
		History:  session.History(),
	}

	turn = a.route(ctx, turn)
	turn = a.dispatch(ctx, turn)
	turn = a.synthesize(ctx, turn)

	if turn.Answer == "" {
		// The synthesizer guarantees a non-empty answer; this is a
		// safety net for handler bugs.
		turn.Answer = notSureResponse
	}

	session.Append(question, turn.Answer)
	return turn.Answer
}

// route classifies the question.
func (a *Assistant) route(ctx context.Context, turn Turn) Turn {
	turn.Intent = a.classifier.Classify(ctx, turn.Question)
	a.logger.Info("routing turn", "intent", string(turn.Intent))
	return turn
}

// dispatch runs the handler for the routed intent.
func (a *Assistant) dispatch(ctx context.Context, turn Turn) Turn {
	switch turn.Intent {
	case core.IntentInvalidQuestion:
		turn.Answer = offTopicResponse

	case core.IntentRecommendation:
		turn.Answer, _ = a.recommender.Recommend(ctx, turn.Question)

	case core.IntentSearchNews:
		turn.Answer = a.newsHandler.Respond(ctx, turn.Question)

	default: // core.IntentRetrieveDocs
		turn = a.retrieveDocs(ctx, turn)
	}
	return turn
}

// retrieveDocs fills ContextDocs, or sets the not-found answer when the
// store has nothing relevant.
func (a *Assistant) retrieveDocs(ctx context.Context, turn Turn) Turn {
	if a.retriever == nil {
		turn.Answer = notFoundResponse
		return turn
	}

	results, err := a.retriever.Search(ctx, turn.Question, retrieval.DefaultLimit)
	if err != nil {
		a.logger.Error("document retrieval failed", "error", err)
		turn.Answer = notFoundResponse
		return turn
	}
	if len(results) == 0 {
		turn.Answer = notFoundResponse
		return turn
	}

	turn.ContextDocs = results
	return turn
}
