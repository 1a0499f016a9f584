package service

import (
	"fmt"
	"strings"

	"github.com/timmy/brandkit/internal/domain"
	"github.com/timmy/brandkit/internal/prompts"
)

// BuildLogoPrompt assembles the constrained image-generation prompt from the
// user's input and whatever could be extracted from the generated kit. The
// template is deterministic: identical inputs produce identical prompts.
// With no extracted colors the prompt falls back to "vibrant colors" rather
// than an empty color list.
func BuildLogoPrompt(input *domain.BrandInput, colors []string, conceptSummary string) string {
	colorStr := prompts.LogoColorFallback
	if len(colors) > 0 {
		colorStr = strings.Join(colors, ", ")
	}

	keywords := input.CompanyKeywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	return fmt.Sprintf(
		"Design a modern, minimalist logo for a %s brand named %s. "+
			"The logo should be tailored for %s with a focus on %s. "+
			"Use these colors: %s. "+
			"%s "+
			"Concept: %s. "+
			"%s",
		input.BrandIndustry,
		input.BrandName,
		strings.Join(keywords, ", "),
		input.BrandPersonality,
		colorStr,
		prompts.LogoNegativeConstraints,
		conceptSummary,
		prompts.LogoClosingConstraints,
	)
}
