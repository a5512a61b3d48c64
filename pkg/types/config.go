package types

import "time"

// Default values for the resolved configuration. The endpoint matches a
// local Ollama instance exposing the OpenAI-compatible API.
const (
	DefaultEndpoint = "http://localhost:11434/v1/chat/completions"
	DefaultModel    = "qwen2.5vl"
	DefaultTimeout  = 5 * time.Minute
)

// Config is the fully resolved pipeline configuration. It is produced once
// by layered resolution (CLI flags > config file > environment > defaults)
// and treated as immutable afterwards.
type Config struct {
	// Endpoint is the OpenAI-compatible chat-completions URL.
	Endpoint string

	// Model is the vision-capable model identifier sent with each request.
	Model string

	// APIKey is an optional bearer token. When empty, requests carry no
	// Authorization header.
	APIKey string

	// Timeout is the HTTP request timeout for model calls.
	Timeout time.Duration
}
