package generator

import (
	"context"

	"video_script_generator/search"
)

// Request carries the user's input for one generation run.
type Request struct {
	Topic string `json:"topic"`
	// DurationMinutes is the target video length. Valid range is 1 to 15;
	// zero means "use the default" (5).
	DurationMinutes int `json:"duration_minutes"`
}

// Credentials holds the two API keys for one run. They are passed
// explicitly and never written into the process environment.
type Credentials struct {
	ModelAPIKey  string
	SearchAPIKey string
}

// Searcher is the web-search tool handed to agents. *search.Client
// implements it.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// AgentSpec is one fixed role in the pipeline: a persona plus an optional
// search tool, bound to a shared model client. Immutable once built.
type AgentSpec struct {
	Role      string
	Goal      string
	Backstory string
	// Tool is nil for agents without web access.
	Tool Searcher
	// AllowDelegation is always false here: the task order is the only
	// control flow. NewCrew rejects agents that set it.
	AllowDelegation bool

	llm LLMClient
}

// TaskSpec is a unit of work bound to one agent. Context lists the prior
// tasks whose output feeds this one; in this pipeline it is always zero or
// one task.
type TaskSpec struct {
	Description    string
	ExpectedOutput string
	Agent          *AgentSpec
	Context        []*TaskSpec

	output string
}

// Result is the standardized artifact shape. Markdown is always the raw
// model output; Title and Digest are best-effort extractions and may be
// empty.
type Result struct {
	Title    string `json:"title"`
	Digest   string `json:"digest"`
	Markdown string `json:"markdown"`
}
