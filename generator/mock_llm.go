package generator

import (
	"context"
	"strings"
)

// MockLLM is a placeholder client for local runs and tests. It echoes the
// user prompt back inside a fixed Markdown skeleton instead of calling an
// external model.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Sample Video Script\n\n")
	sb.WriteString("This is placeholder output generated without a model call.\n\n")
	sb.WriteString("## Prompt\n\n")
	sb.WriteString("```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n")
	return sb.String(), nil
}
