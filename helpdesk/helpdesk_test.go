package helpdesk

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/ai/mock"
	"github.com/carvisor/carvisor/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSystemStatus_KnownDevices(t *testing.T) {
	assert.Equal(t, "🟢 Online and functioning normally", CheckSystemStatus("printer01"))
	assert.Equal(t, "🔴 Offline - requires restart", CheckSystemStatus("router23"))
	assert.Equal(t, "🟡 Online but high CPU usage (85%)", CheckSystemStatus("server07"))
}

func TestCheckSystemStatus_UnknownDevice(t *testing.T) {
	assert.Equal(t,
		"❓ Device 'toaster99' not found in monitoring system",
		CheckSystemStatus("toaster99"))
}

func TestCreateTicket(t *testing.T) {
	out := CreateTicket("hardware", "high", "Laptop screen is cracked")

	assert.Contains(t, out, "🎫 IT Ticket Created Successfully!")
	assert.Contains(t, out, "**Type:** Hardware")
	assert.Contains(t, out, "🟠 HIGH")
	assert.Contains(t, out, "Laptop screen is cracked")

	match := regexp.MustCompile(`\*\*Ticket ID:\*\* IT-(\d{4})`).FindStringSubmatch(out)
	require.NotNil(t, match)
	n, err := strconv.Atoi(match[1])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1000)
	assert.LessOrEqual(t, n, 9999)
}

func TestCreateTicket_UnknownPriority(t *testing.T) {
	out := CreateTicket("software", "whenever", "no rush")
	assert.Contains(t, out, "⚪ WHENEVER")
}

func TestCreateTicket_MultibyteIssueType(t *testing.T) {
	out := CreateTicket("ổ cứng", "medium", "ổ cứng kêu lạch cạch")
	assert.Contains(t, out, "**Type:** Ổ Cứng")
}

func TestAvailableDevices(t *testing.T) {
	out := AvailableDevices()
	for _, device := range []string{"printer01", "router24", "server08", "workstation15"} {
		assert.Contains(t, out, device)
	}
}

// fixedRetriever returns canned search results.
type fixedRetriever struct {
	results []*core.SearchResult
	err     error
}

func (r *fixedRetriever) Search(ctx context.Context, query string, limit int) ([]*core.SearchResult, error) {
	return r.results, r.err
}

func kbResults(contents ...string) []*core.SearchResult {
	var results []*core.SearchResult
	for _, content := range contents {
		results = append(results, &core.SearchResult{
			Document: &core.Document{Content: content, Source: "it_helpdesk"},
			Score:    0.9,
		})
	}
	return results
}

func TestRespond_FunctionCallPath(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		settings := ai.ApplyChatOptions(opts...)
		if len(settings.Tools) > 0 {
			return &ai.ChatResponse{ToolCall: &ai.ToolCall{
				Name:      "check_system_status",
				Arguments: `{"device_id": "printer01"}`,
			}}, nil
		}
		return &ai.ChatResponse{Content: "Try restarting the print spooler."}, nil
	}
	handler := NewHandler(&fixedRetriever{results: kbResults("Printer not working: restart spooler.")}, chatter)

	out := handler.Respond(context.Background(), "check status of printer01", nil)
	assert.Contains(t, out, "🔧 **System Check:**")
	assert.Contains(t, out, "🟢 Online and functioning normally")
	assert.Contains(t, out, "💡 **Additional Help:**")
	assert.Contains(t, out, "**Knowledge Base Sources:** 1")
}

func TestRespond_RAGOnly(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		settings := ai.ApplyChatOptions(opts...)
		if len(settings.Tools) > 0 {
			// No tool selected for this question
			return &ai.ChatResponse{Content: "I don't need a function for this."}, nil
		}
		return &ai.ChatResponse{Content: "Reset your password via the portal."}, nil
	}
	handler := NewHandler(&fixedRetriever{results: kbResults("How to reset password: visit portal.")}, chatter)

	out := handler.Respond(context.Background(), "how do I reset my password", nil)
	assert.True(t, strings.HasPrefix(out, "💡 **IT Support:**"))
	assert.Contains(t, out, "Reset your password via the portal.")
}

func TestRespond_MenuFallback(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		return nil, errors.New("model offline")
	}
	handler := NewHandler(&fixedRetriever{err: errors.New("store offline")}, chatter)

	out := handler.Respond(context.Background(), "hello", nil)
	assert.Equal(t, menuResponse, out)
}

func TestRespond_DegradedModeWithoutRetriever(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		settings := ai.ApplyChatOptions(opts...)
		if len(settings.Tools) > 0 {
			return &ai.ChatResponse{ToolCall: &ai.ToolCall{
				Name:      "create_it_ticket",
				Arguments: `{"issue_type": "network", "priority": "critical", "description": "Office internet is down"}`,
			}}, nil
		}
		return &ai.ChatResponse{}, nil
	}
	handler := NewHandler(nil, chatter)

	out := handler.Respond(context.Background(), "create a ticket, internet down", nil)
	assert.Contains(t, out, "🔧 **System Check:**")
	assert.Contains(t, out, "🔴 CRITICAL")
	assert.Contains(t, out, "Office internet is down")
}

func TestRespond_BadToolArguments(t *testing.T) {
	chatter := mock.NewMockChatter()
	chatter.ChatFunc = func(ctx context.Context, msgs []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
		settings := ai.ApplyChatOptions(opts...)
		if len(settings.Tools) > 0 {
			return &ai.ChatResponse{ToolCall: &ai.ToolCall{
				Name:      "check_system_status",
				Arguments: `{device_id: broken`,
			}}, nil
		}
		return &ai.ChatResponse{}, nil
	}
	handler := NewHandler(nil, chatter)

	out := handler.Respond(context.Background(), "check printer", nil)
	assert.Contains(t, out, "❌ Error parsing function arguments")
}

func TestRespond_UnknownTool(t *testing.T) {
	handler := NewHandler(nil, mock.NewMockChatter())
	out := handler.executeTool(&ai.ToolCall{Name: "format_disk", Arguments: "{}"})
	assert.Equal(t, "❌ Unknown function: format_disk", out)
}

func TestSeedDocuments(t *testing.T) {
	docs := SeedDocuments()
	assert.Len(t, docs, 8)
	assert.Contains(t, docs[3], "Printer not working")
}
