package generator

import "fmt"

// buildAgents produces the three fixed pipeline roles for one request. The
// trend analyst and the researcher get the search tool; the script writer
// works only from upstream task output.
func buildAgents(req Request, llm LLMClient, tool Searcher) []*AgentSpec {
	trendAnalyst := &AgentSpec{
		Role: "Video Trend Analyst",
		Goal: fmt.Sprintf(
			"Identify the 3 most popular angles and sub-topics, and the questions people ask, about: %s",
			req.Topic),
		Backstory: "You are a YouTube content strategy expert. You know how to spot what captivates an audience and drives engagement.",
		Tool:      tool,
		llm:       llm,
	}

	researcher := &AgentSpec{
		Role: "Senior Web Researcher",
		Goal: "For each identified angle, find 2-3 striking facts, statistics, or concrete examples. " +
			"Every fact must come with its source URL.",
		Backstory: "You are a meticulous fact-checker. Your mission is to supply verifiable, sourced information to enrich the script.",
		Tool:      tool,
		llm:       llm,
	}

	scriptWriter := &AgentSpec{
		Role: "Video Script Writer",
		Goal: fmt.Sprintf(
			"Write a captivating, well-structured video script from the angles and facts provided, targeting an approximate duration of %d minutes.",
			req.DurationMinutes),
		Backstory: "You are a creative screenwriter with a knack for turning raw facts into engaging narration. The script must be ready to record.",
		llm:       llm,
	}

	return []*AgentSpec{trendAnalyst, researcher, scriptWriter}
}
