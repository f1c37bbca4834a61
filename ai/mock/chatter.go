package mock

import (
	"context"

	"github.com/carvisor/carvisor/ai"
)

// MockChatter is a test double for ai.Chatter.
// It allows custom behavior injection via function fields and supports a
// simple queue of scripted responses.
type MockChatter struct {
	// ChatFunc is called by Chat if set.
	// If nil, uses queued responses or the default echo behavior.
	ChatFunc func(ctx context.Context, messages []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error)

	// queue holds scripted responses returned in FIFO order.
	queue []*ai.ChatResponse

	callCount int

	// LastMessages holds the messages of the most recent Chat call,
	// for prompt assertions.
	LastMessages []ai.Message
}

// NewMockChatter creates a mock chatter with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockChatter().
func NewMockChatter() *MockChatter {
	return &MockChatter{}
}

// EnqueueContent schedules a plain-text response.
func (m *MockChatter) EnqueueContent(content string) {
	m.queue = append(m.queue, &ai.ChatResponse{Content: content})
}

// EnqueueToolCall schedules a tool-call response.
func (m *MockChatter) EnqueueToolCall(name, arguments string) {
	m.queue = append(m.queue, &ai.ChatResponse{
		ToolCall: &ai.ToolCall{Name: name, Arguments: arguments},
	})
}

// Chat returns the injected, queued, or default response.
// Default behavior echoes the last human message back, which is enough
// for flows that only assert on non-empty answers.
func (m *MockChatter) Chat(ctx context.Context, messages []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
	m.callCount++
	m.LastMessages = messages

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, messages, opts...)
	}

	if len(m.queue) > 0 {
		response := m.queue[0]
		m.queue = m.queue[1:]
		return response, nil
	}

	// Default: echo the last human message
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == ai.RoleHuman {
			return &ai.ChatResponse{Content: messages[i].Content}, nil
		}
	}
	return &ai.ChatResponse{}, nil
}

// CallCount returns the number of times Chat was called.
func (m *MockChatter) CallCount() int {
	return m.callCount
}

// Reset clears the call count, the queue, and any custom function.
func (m *MockChatter) Reset() {
	m.callCount = 0
	m.queue = nil
	m.ChatFunc = nil
	m.LastMessages = nil
}
