package service

import (
	"strings"
	"testing"
)

// TestBuildLogoPrompt verifies the prompt carries industry, name, colors, and concept
func TestBuildLogoPrompt(t *testing.T) {
	input := testInput()
	colors := []string{"#FF6B35", "#2E4057"}

	got := BuildLogoPrompt(input, colors, "A rising sun over a leaf.")

	if !strings.Contains(got, "for a Beauty brand named Solara") {
		t.Errorf("missing industry and name: %q", got)
	}
	if !strings.Contains(got, "Use these colors: #FF6B35, #2E4057.") {
		t.Errorf("missing color list: %q", got)
	}
	if !strings.Contains(got, "Concept: A rising sun over a leaf..") {
		t.Errorf("missing concept: %q", got)
	}
	if !strings.Contains(got, "focus on Sincerity") {
		t.Errorf("missing personality: %q", got)
	}
}

// TestBuildLogoPromptColorFallback verifies an empty color list falls back
func TestBuildLogoPromptColorFallback(t *testing.T) {
	got := BuildLogoPrompt(testInput(), nil, "")
	if !strings.Contains(got, "Use these colors: vibrant colors.") {
		t.Errorf("missing color fallback: %q", got)
	}
}

// TestBuildLogoPromptKeywordCap verifies only the first three keywords appear
func TestBuildLogoPromptKeywordCap(t *testing.T) {
	input := testInput()
	input.CompanyKeywords = []string{"one", "two", "three", "four"}

	got := BuildLogoPrompt(input, nil, "")

	if !strings.Contains(got, "tailored for one, two, three ") {
		t.Errorf("missing keyword list: %q", got)
	}
	if strings.Contains(got, "four") {
		t.Errorf("fourth keyword leaked: %q", got)
	}
}

// TestBuildLogoPromptDeterministic verifies identical inputs give identical prompts
func TestBuildLogoPromptDeterministic(t *testing.T) {
	input := testInput()
	colors := []string{"#A1B2C3"}

	first := BuildLogoPrompt(input, colors, "concept")
	second := BuildLogoPrompt(input, colors, "concept")
	if first != second {
		t.Errorf("prompts differ:\n%q\n%q", first, second)
	}
}
