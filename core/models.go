package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Document IDs are derived from content hashing so that identical
// chunks deduplicate naturally on re-ingestion.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Intent is a routing label produced by the intent classifier.
type Intent string

const (
	// IntentRecommendation routes to the car recommendation handler.
	IntentRecommendation Intent = "recommendation"
	// IntentRetrieveDocs routes to the knowledge-base retrieval handler.
	IntentRetrieveDocs Intent = "retrieve_docs"
	// IntentSearchNews routes to the automotive news handler.
	IntentSearchNews Intent = "search_news"
	// IntentInvalidQuestion marks questions outside the automotive domain.
	IntentInvalidQuestion Intent = "invalid_question"
)

// DefaultIntent is the fallback label used when classification produces
// anything outside the known set.
const DefaultIntent = IntentRetrieveDocs

// ValidIntent reports whether the label belongs to the closed intent set.
func ValidIntent(label Intent) bool {
	switch label {
	case IntentRecommendation, IntentRetrieveDocs, IntentSearchNews, IntentInvalidQuestion:
		return true
	}
	return false
}

// Document represents a chunk of knowledge-base text.
// It may be enriched with an embedding vector during ingestion.
type Document struct {
	Id         ID
	Content    string
	Source     string            // Originating file or dataset name
	Metadata   map[string]string // Optional metadata (e.g., "description", "chunk")
	Vector     []float32         // Embedding vector for semantic search (populated by the pipeline)
	InsertedAt time.Time         // When the document was inserted into the database
	UpdatedAt  time.Time         // When the document was last updated
}

// SearchResult represents a retrieval hit with its relevance score.
// Scores are cosine similarities in [0,1]; higher means more similar.
type SearchResult struct {
	Document *Document
	Score    float32
}

// Exchange is a single (question, answer) pair in a conversation.
type Exchange struct {
	Question string
	Answer   string
}

// Criteria captures structured car-buying requirements extracted from a
// free-text question. Zero values mean "not specified"; extraction never
// fails, it only leaves fields empty.
type Criteria struct {
	BudgetMax       int64    // Maximum budget in USD; 0 = unspecified
	Purposes        []string // Purpose tags (see catalog.ValidPurposes)
	Priorities      []string // Priority tags (see catalog.ValidPriorities)
	BrandPreference string   // Brand origin (e.g., "Japanese"); empty = no preference
	Passengers      int      // Required seat count; 0 = unspecified
}

// Empty reports whether no criteria field has been populated.
func (c Criteria) Empty() bool {
	return c.BudgetMax == 0 &&
		len(c.Purposes) == 0 &&
		len(c.Priorities) == 0 &&
		c.BrandPreference == "" &&
		c.Passengers == 0
}

// CatalogEntry is a static car record used by the recommendation handler.
// Entries are read-only reference data loaded at startup.
type CatalogEntry struct {
	Name         string
	PriceMinUSD  int64
	PriceMaxUSD  int64
	FuelEconomy  string
	Size         string
	Purposes     []string
	Priorities   []string
	BrandOrigin  string
	SafetyRating string
	Technology   string
	Style        string
	Drivetrain   string
	BodyType     string
}

// Ranked pairs a catalog entry with its criteria match score.
type Ranked struct {
	Entry CatalogEntry
	Score int
}
