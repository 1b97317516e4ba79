package generator

import (
	"errors"
	"regexp"
	"strings"
)

var titleRe = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// PostProcess standardizes the raw pipeline output into a Result. The
// Markdown field always carries the raw text untouched; Title and Digest
// are extracted when the text has the expected shape and left empty
// otherwise.
func PostProcess(raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, &ExecutionError{Stage: "postprocess", Err: errEmptyArtifact}
	}

	digest := extractDigest(raw)
	if digest == "" {
		digest = defaultDigest(raw, 120)
	}

	return Result{
		Title:    extractTitle(raw),
		Digest:   digest,
		Markdown: raw,
	}, nil
}

var errEmptyArtifact = errors.New("pipeline produced an empty artifact")

func extractTitle(md string) string {
	m := titleRe.FindStringSubmatch(md)
	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractDigest takes the first non-heading paragraph line.
func extractDigest(md string) string {
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed
	}
	return ""
}

func defaultDigest(md string, limit int) string {
	joined := strings.Join(strings.Fields(md), " ")
	if len(joined) <= limit {
		return joined
	}
	return joined[:limit]
}
