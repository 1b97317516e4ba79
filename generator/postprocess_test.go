package generator

import "testing"

func TestPostProcessKeepsMarkdownExact(t *testing.T) {
	raw := "# Title\n\nFirst paragraph.\n\n- item\n"
	result, err := PostProcess(raw)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if result.Markdown != raw {
		t.Errorf("markdown mutated: %q", result.Markdown)
	}
	if result.Title != "Title" {
		t.Errorf("title %q", result.Title)
	}
	if result.Digest != "First paragraph." {
		t.Errorf("digest %q", result.Digest)
	}
}

func TestPostProcessWithoutHeading(t *testing.T) {
	raw := "Just plain text with no heading at all."
	result, err := PostProcess(raw)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if result.Title != "" {
		t.Errorf("title should be empty, got %q", result.Title)
	}
	if result.Markdown != raw {
		t.Error("raw text must be preserved even without structure")
	}
	if result.Digest == "" {
		t.Error("digest should fall back to the raw text")
	}
}

func TestPostProcessEmptyArtifact(t *testing.T) {
	for _, raw := range []string{"", "   \n\t"} {
		if _, err := PostProcess(raw); err == nil {
			t.Errorf("raw %q: want error", raw)
		}
	}
}

func TestDefaultDigestTruncates(t *testing.T) {
	long := "word "
	for range 6 {
		long += long
	}
	got := defaultDigest(long, 120)
	if len(got) > 120 {
		t.Errorf("digest length %d exceeds limit", len(got))
	}
}
