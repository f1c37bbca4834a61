package news

import "context"

// MockSearcher returns a fixed set of headlines. Used in demo mode and
// whenever live web search is disabled.
type MockSearcher struct{}

var _ Searcher = (*MockSearcher)(nil)

// NewMockSearcher creates a MockSearcher.
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{}
}

// Search returns the canned headlines regardless of query.
func (s *MockSearcher) Search(ctx context.Context, query string) ([]Article, error) {
	return []Article{
		{
			Title:   "🚘 Breaking: Electric vehicle sales surge 25% in Q2 2025.",
			Content: "Electric vehicle sales surge 25% in Q2 2025.",
		},
		{
			Title:   "🔧 Update: Toyota announces new hybrid models for 2026.",
			Content: "Toyota announces new hybrid models for 2026.",
		},
		{
			Title:   "🛠️ Analysis: How EV maintenance compares with gas-powered cars.",
			Content: "How EV maintenance compares with gas-powered cars.",
		},
	}, nil
}
