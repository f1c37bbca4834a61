package ai

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
	RoleAI     Role = "ai"
)

// Message is a single entry in a chat transcript.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage is shorthand for a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// HumanMessage is shorthand for a human-role message.
func HumanMessage(content string) Message {
	return Message{Role: RoleHuman, Content: content}
}

// AIMessage is shorthand for an assistant-role message.
func AIMessage(content string) Message {
	return Message{Role: RoleAI, Content: content}
}

// ToolDef describes a callable function exposed to the model.
// Parameters is a JSON Schema object.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolCall is the model's request to invoke a tool.
// Arguments is the raw JSON argument object as produced by the model.
type ToolCall struct {
	Name      string
	Arguments string
}

// ChatResponse is the result of a chat completion.
type ChatResponse struct {
	Content  string
	ToolCall *ToolCall // Non-nil when the model selected a tool
}

// ChatSettings collects per-call settings resolved from ChatOptions.
type ChatSettings struct {
	Temperature *float64
	JSONMode    bool
	Tools       []ToolDef
}

// ChatOption is a functional option for a single Chat call.
type ChatOption func(*ChatSettings)

// WithTemperature sets the sampling temperature for this call.
func WithTemperature(temperature float64) ChatOption {
	return func(s *ChatSettings) {
		s.Temperature = &temperature
	}
}

// WithJSONMode asks the model to emit a JSON object.
func WithJSONMode() ChatOption {
	return func(s *ChatSettings) {
		s.JSONMode = true
	}
}

// WithTools exposes the given tools to the model for this call.
func WithTools(tools []ToolDef) ChatOption {
	return func(s *ChatSettings) {
		s.Tools = tools
	}
}

// ApplyChatOptions folds the options into a settings struct.
// Used by Chatter implementations.
func ApplyChatOptions(opts ...ChatOption) ChatSettings {
	var settings ChatSettings
	for _, opt := range opts {
		opt(&settings)
	}
	return settings
}
