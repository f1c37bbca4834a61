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


// Package helpdesk implements the IT helpdesk flow: knowledge-base
// retrieval combined with function calling for device status checks and
// ticket creation.
package helpdesk

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/core"
)

const retrievalK = 3

const systemPrompt = "You are an IT helpdesk assistant. Use functions when users ask about system status or need to create tickets."

const menuResponse = `🤖 **IT Helpdesk Assistant**

I can help you with:
• Password resets and account issues
• Computer performance problems
• Network and VPN connectivity
• Printer and hardware support
• Software installation requests
• System status checks (try: "check status of printer01")
• Creating IT tickets (try: "create a ticket for broken laptop")

What IT issue can I help you resolve today?`

// Retriever finds knowledge-base documents for a query.
type Retriever interface {
	Search(ctx context.Context, query string, limit int) ([]*core.SearchResult, error)
}

// Handler answers IT support questions.
type Handler struct {
	retriever Retriever
	chatter   ai.Chatter
	tools     []ai.ToolDef
	logger    *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger.With("component", "helpdesk")
	}
}

// NewHandler creates a helpdesk Handler. A nil retriever puts the
// handler in degraded mode: function calling still works but the
// knowledge-base path is skipped.
func NewHandler(retriever Retriever, chatter ai.Chatter, opts ...Option) *Handler {
	h := &Handler{
		retriever: retriever,
		chatter:   chatter,
		tools:     toolDefs(),
		logger:    slog.Default().With("component", "helpdesk"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// toolDefs describes the callable helpdesk functions.
func toolDefs() []ai.ToolDef {
	return []ai.ToolDef{
		{
			Name:        "check_system_status",
			Description: "Check status of IT systems and devices by device ID",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"device_id": map[string]any{
						"type":        "string",
						"description": "Device unique identifier (e.g., printer01, router23, server07)",
					},
				},
				"required": []string{"device_id"},
			},
		},
		{
			Name:        "create_it_ticket",
			Description: "Create an IT support ticket for complex issues",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"issue_type": map[string]any{
						"type":        "string",
						"description": "Type of issue (hardware, software, network, security)",
					},
					"priority": map[string]any{
						"type":        "string",
						"description": "Priority level (low, medium, high, critical)",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "Detailed description of the issue",
					},
				},
				"required": []string{"issue_type", "priority", "description"},
			},
		},
	}
}

// Respond answers an IT support question, combining the function-call
// result and the knowledge-base answer when both are present. Never
// returns an error; with nothing to say it falls back to the menu.
func (h *Handler) Respond(ctx context.Context, question string, history []core.Exchange) string {
	ragAnswer := h.answerFromKnowledgeBase(ctx, question, history)
	funcAnswer := h.answerFromFunctions(ctx, question)

	switch {
	case funcAnswer != "" && ragAnswer != "":
		return fmt.Sprintf("🔧 **System Check:**\n%s\n\n💡 **Additional Help:**\n%s", funcAnswer, ragAnswer)
	case funcAnswer != "":
		return fmt.Sprintf("🔧 **System Check:**\n%s", funcAnswer)
	case ragAnswer != "":
		return fmt.Sprintf("💡 **IT Support:**\n%s", ragAnswer)
	default:
		return menuResponse
	}
}

// answerFromKnowledgeBase runs the RAG path. Returns "" on any failure.
func (h *Handler) answerFromKnowledgeBase(ctx context.Context, question string, history []core.Exchange) string {
	if h.retriever == nil {
		return ""
	}

	results, err := h.retriever.Search(ctx, question, retrievalK)
	if err != nil {
		h.logger.Warn("knowledge base retrieval failed", "error", err)
		return ""
	}
	if len(results) == 0 {
		return ""
	}

	var contextText strings.Builder
	for _, result := range results {
		contextText.WriteString(result.Document.Content)
		contextText.WriteString("\n")
	}

	messages := []ai.Message{
		ai.SystemMessage("You are an IT helpdesk assistant. Answer the user's question using the reference documents below. Be concise and practical.\n\nReference documents:\n" + contextText.String()),
	}
	// Include the recent conversation for follow-up questions.
	for _, exchange := range lastN(history, 5) {
		messages = append(messages,
			ai.HumanMessage(exchange.Question),
			ai.AIMessage(exchange.Answer))
	}
	messages = append(messages, ai.HumanMessage(question))

	resp, err := h.chatter.Chat(ctx, messages, ai.WithTemperature(0.3))
	if err != nil {
		h.logger.Warn("knowledge base answer generation failed", "error", err)
		return ""
	}
	if strings.TrimSpace(resp.Content) == "" {
		return ""
	}

	return fmt.Sprintf("%s\n\n📚 **Knowledge Base Sources:** %d relevant documents found",
		resp.Content, len(results))
}

// answerFromFunctions runs the tool-calling path. Returns "" when the
// model picks no tool or the call fails.
func (h *Handler) answerFromFunctions(ctx context.Context, question string) string {
	resp, err := h.chatter.Chat(ctx, []ai.Message{
		ai.SystemMessage(systemPrompt),
		ai.HumanMessage(question),
	}, ai.WithTools(h.tools))
	if err != nil {
		h.logger.Warn("function calling failed", "error", err)
		return ""
	}
	if resp.ToolCall == nil {
		return ""
	}
	return h.executeTool(resp.ToolCall)
}

// executeTool dispatches a tool call to its implementation.
func (h *Handler) executeTool(call *ai.ToolCall) string {
	switch call.Name {
	case "check_system_status":
		var args struct {
			DeviceID string `json:"device_id"`
		}
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "❌ Error parsing function arguments"
		}
		return CheckSystemStatus(args.DeviceID)

	case "create_it_ticket":
		var args struct {
			IssueType   string `json:"issue_type"`
			Priority    string `json:"priority"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "❌ Error parsing function arguments"
		}
		if args.Priority == "" {
			args.Priority = "medium"
		}
		return CreateTicket(args.IssueType, args.Priority, args.Description)

	default:
		return fmt.Sprintf("❌ Unknown function: %s", call.Name)
	}
}

func lastN(history []core.Exchange, n int) []core.Exchange {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
