package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Crew is the fixed, sequential pipeline: agents plus a linear task path.
// Execution is strictly ordered; a task never starts before every task in
// its context has completed.
type Crew struct {
	Agents []*AgentSpec
	Tasks  []*TaskSpec
}

// Inputs are the bindings passed to one Kickoff run.
type Inputs struct {
	Topic           string
	DurationMinutes int
}

// NewCrew validates the task graph: every task has an agent, no agent
// allows delegation, and each task's context references only tasks that
// appear earlier in the list.
func NewCrew(agents []*AgentSpec, tasks []*TaskSpec) (*Crew, error) {
	if len(agents) == 0 || len(tasks) == 0 {
		return nil, errors.New("crew requires agents and tasks")
	}
	for _, a := range agents {
		if a.AllowDelegation {
			return nil, fmt.Errorf("agent %q allows delegation; the task order is the only control flow", a.Role)
		}
	}
	seen := make(map[*TaskSpec]bool, len(tasks))
	for i, t := range tasks {
		if t.Agent == nil {
			return nil, fmt.Errorf("task %d has no agent", i)
		}
		for _, dep := range t.Context {
			if !seen[dep] {
				return nil, fmt.Errorf("task %d depends on a task that does not precede it", i)
			}
		}
		seen[t] = true
	}
	return &Crew{Agents: agents, Tasks: tasks}, nil
}

// Kickoff runs every task in order and returns the final task's output.
// Each task makes at most one search call and exactly one model call.
// The first error aborts the run; no partial output is returned.
func (c *Crew) Kickoff(ctx context.Context, inputs Inputs) (string, error) {
	var final string
	for _, task := range c.Tasks {
		out, err := c.runTask(ctx, task, inputs)
		if err != nil {
			return "", &ExecutionError{Stage: task.Agent.Role, Err: err}
		}
		task.output = out
		final = out
	}
	return final, nil
}

func (c *Crew) runTask(ctx context.Context, task *TaskSpec, inputs Inputs) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	agent := task.Agent

	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: %s\n\n", task.Description)
	fmt.Fprintf(&sb, "Expected output: %s\n", task.ExpectedOutput)

	for _, dep := range task.Context {
		sb.WriteString("\nOutput of the previous task:\n")
		sb.WriteString(dep.output)
		sb.WriteString("\n")
	}

	if agent.Tool != nil {
		results, err := agent.Tool.Search(ctx, inputs.Topic)
		if err != nil {
			return "", fmt.Errorf("web search: %w", err)
		}
		if len(results) > 0 {
			sb.WriteString("\nWeb search findings:\n")
			for _, r := range results {
				fmt.Fprintf(&sb, "- %s (%s): %s\n", r.Title, r.URL, r.Content)
			}
		}
	}

	prompt := Prompt{
		System: fmt.Sprintf("You are a %s. %s\nYour goal: %s\nWork alone and answer directly; do not hand the task to anyone else.",
			agent.Role, agent.Backstory, agent.Goal),
		User: sb.String(),
	}

	out, err := agent.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("model returned empty output")
	}
	return out, nil
}
