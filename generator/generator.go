package generator

import (
	"context"
	"errors"
	"strings"

	"video_script_generator/search"
)

const (
	// DefaultDuration is used when the request omits a duration.
	DefaultDuration = 5
	MinDuration     = 1
	MaxDuration     = 15
)

// Options tune the clients built by Bootstrap.
type Options struct {
	Model      string
	BaseURL    string
	SearchTopK int
}

// Generator runs the fixed three-agent pipeline behind a narrow interface:
// one request in, one artifact out. Built fresh per request so credentials
// never outlive the run that supplied them.
type Generator struct {
	llm  LLMClient
	tool Searcher
}

// New assembles a Generator from already-constructed clients. Used directly
// by tests; production code goes through Bootstrap.
func New(llm LLMClient, tool Searcher) (*Generator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if tool == nil {
		return nil, errors.New("search tool is required")
	}
	return &Generator{llm: llm, tool: tool}, nil
}

// Bootstrap validates the credentials and constructs the search and model
// clients. Any failure here is a *ConfigError: nothing remote has been
// called yet and the user can fix the input and retry.
func Bootstrap(creds Credentials, opts Options) (*Generator, error) {
	if creds.ModelAPIKey == "" {
		return nil, configErrorf("model API key is missing")
	}
	if creds.SearchAPIKey == "" {
		return nil, configErrorf("search API key is missing")
	}

	tool, err := search.New(creds.SearchAPIKey, opts.SearchTopK)
	if err != nil {
		return nil, configErrorf("search tool init failed: %v", err)
	}

	model := opts.Model
	if model == "" {
		model = "gpt-4o"
	}
	llm, err := NewOpenAILLM(LLMSettings{
		Model:   model,
		APIKey:  creds.ModelAPIKey,
		BaseURL: opts.BaseURL,
	})
	if err != nil {
		return nil, configErrorf("model client init failed: %v", err)
	}

	return New(llm, tool)
}

// Generate validates the request, builds the three agents and the linear
// task path, and runs them to completion. Blocking; the context bounds the
// whole run.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return Result{}, configErrorf("topic must not be empty")
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = DefaultDuration
	}
	if req.DurationMinutes < MinDuration || req.DurationMinutes > MaxDuration {
		return Result{}, configErrorf("duration must be between %d and %d minutes", MinDuration, MaxDuration)
	}

	agents := buildAgents(req, g.llm, g.tool)
	tasks := buildTasks(req, agents)
	crew, err := NewCrew(agents, tasks)
	if err != nil {
		return Result{}, configErrorf("crew construction failed: %v", err)
	}

	raw, err := crew.Kickoff(ctx, Inputs{Topic: req.Topic, DurationMinutes: req.DurationMinutes})
	if err != nil {
		return Result{}, err
	}
	return PostProcess(raw)
}
