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


package openai

import (
	"context"
	"log/slog"

	"github.com/carvisor/carvisor/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Chatter implements ai.Chatter using OpenAI-compatible chat APIs.
type Chatter struct {
	client llms.Model
	logger *slog.Logger
}

// newChatter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newChatter(config *ai.Config) (*Chatter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Chatter{
		client: client,
		logger: slog.Default().With("component", "openai-chatter"),
	}, nil
}

// NewChatter creates a new chat completion service using the provided configuration.
//
// Returns ai.Chatter interface to enforce abstraction.
func NewChatter(config *ai.Config) (ai.Chatter, error) {
	return newChatter(config)
}

// Chat sends the messages to the model and returns its reply.
func (c *Chatter) Chat(ctx context.Context, messages []ai.Message, opts ...ai.ChatOption) (*ai.ChatResponse, error) {
	settings := ai.ApplyChatOptions(opts...)

	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		content = append(content, llms.MessageContent{
			Role:  toChatMessageType(msg.Role),
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	callOpts := make([]llms.CallOption, 0, 3)
	if settings.Temperature != nil {
		callOpts = append(callOpts, llms.WithTemperature(*settings.Temperature))
	}
	if settings.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}
	if len(settings.Tools) > 0 {
		callOpts = append(callOpts, llms.WithTools(toTools(settings.Tools)))
	}

	response, err := c.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		c.logger.Error("failed to generate content", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		c.logger.Debug("no choices returned from model")
		return &ai.ChatResponse{}, nil
	}

	choice := response.Choices[0]
	result := &ai.ChatResponse{Content: choice.Content}

	if len(choice.ToolCalls) > 0 && choice.ToolCalls[0].FunctionCall != nil {
		call := choice.ToolCalls[0].FunctionCall
		result.ToolCall = &ai.ToolCall{
			Name:      call.Name,
			Arguments: call.Arguments,
		}
	}

	return result, nil
}

// toChatMessageType maps ai roles onto langchaingo message types.
func toChatMessageType(role ai.Role) llms.ChatMessageType {
	switch role {
	case ai.RoleSystem:
		return llms.ChatMessageTypeSystem
	case ai.RoleAI:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// toTools converts tool definitions into langchaingo function tools.
func toTools(defs []ai.ToolDef) []llms.Tool {
	tools := make([]llms.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		})
	}
	return tools
}
