package generator

import "context"

// LLMClient abstracts the chat-completion client so it can be replaced or
// mocked in tests.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Prompt is one request to the model: the agent persona as the system
// message and the task text as the user message.
type Prompt struct {
	System string
	User   string
}

// LLMSettings configures a concrete client implementation.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}
