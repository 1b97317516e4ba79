package generator

import "fmt"

// buildTasks wires the strict three-step path: trends feed research, and
// research feeds the script. The agents slice must come from buildAgents.
func buildTasks(req Request, agents []*AgentSpec) []*TaskSpec {
	trends := &TaskSpec{
		Description: fmt.Sprintf(
			"Analyze current trends for the topic: %q. Identify the 3 most relevant angles and the questions the audience is asking.",
			req.Topic),
		ExpectedOutput: "A report listing 3 popular angles/sub-topics and the associated audience questions.",
		Agent:          agents[0],
	}

	research := &TaskSpec{
		Description: "For each identified angle, find 2-3 striking facts, statistics, or examples, " +
			"each with its source URL.",
		ExpectedOutput: "A structured report with facts and their source URLs for each angle.",
		Agent:          agents[1],
		Context:        []*TaskSpec{trends},
	}

	script := &TaskSpec{
		Description: fmt.Sprintf(
			"Write the detailed video script outline from the angles and the sourced facts. The script must be paced for a video of about %d minutes.",
			req.DurationMinutes),
		ExpectedOutput: fmt.Sprintf(
			"A complete video script in Markdown with an intro, one section per angle, and a conclusion, adapted to a %d minute duration. Source citations [Source](URL) must be included.",
			req.DurationMinutes),
		Agent:   agents[2],
		Context: []*TaskSpec{research},
	}

	return []*TaskSpec{trends, research, script}
}
