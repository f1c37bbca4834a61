// Package openai implements the ai interfaces against OpenAI-compatible
// HTTP APIs (OpenAI, Azure OpenAI, Ollama, vLLM and friends) via langchaingo.
package openai
