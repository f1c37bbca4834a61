package retrieval

import "github.com/carvisor/carvisor/core"

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps during search.
type Monitor interface {
	Start(query string)
	AfterEmbedding(dimensions int)
	AfterSimilaritySearch(matches []*core.SearchResult)
	VerbatimHit(doc *core.Document)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) AfterEmbedding(_ int)                         {}
func (n *noopMonitor) AfterSimilaritySearch(_ []*core.SearchResult) {}
func (n *noopMonitor) VerbatimHit(_ *core.Document)                 {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                {}
