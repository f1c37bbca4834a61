package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Chatter produces chat completions, optionally selecting a tool to call.
// Implementations must be thread-safe for concurrent use.
type Chatter interface {
	// Chat sends the messages to the model and returns its reply.
	// When tools are supplied via WithTools and the model decides to call
	// one, the response carries a ToolCall instead of (or alongside) text.
	// Returns an error if the completion fails.
	Chat(ctx context.Context, messages []Message, opts ...ChatOption) (*ChatResponse, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Chatter instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Chatter returns the chat completion service.
	// The returned Chatter is safe for concurrent use.
	Chatter() Chatter

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
