// Package generator provides the fast generative fallback used when a
// question needs neither the loaded document nor the web.
//
// Backends: groq, openai and deepseek share the OpenAI chat-completions
// client; anthropic uses the Messages API.
package generator
