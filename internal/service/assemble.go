package service

import (
	"strings"

	"github.com/timmy/brandkit/internal/domain"
	"github.com/timmy/brandkit/internal/prompts"
)

// AssembleContext renders the user's brand attributes and the retrieved
// matches into one context block for the generation model. The user's
// fields are always included verbatim. With zero matches the block states
// so explicitly via the sentinel, so the generator never invents neighbors
// from an empty list; any absent metadata field on a match is rendered as
// the literal "N/A" marker.
func AssembleContext(input *domain.BrandInput, matches []domain.MatchResult) string {
	var b strings.Builder

	b.WriteString("Brand Name: " + input.BrandName + ". ")
	b.WriteString("Description: " + input.BrandDescription + ". ")
	b.WriteString("Industry: " + input.BrandIndustry + ". ")
	b.WriteString("Keywords: " + strings.Join(input.CompanyKeywords, ", ") + ".\n\n")
	b.WriteString("Similar Brands: \n")

	if len(matches) == 0 {
		b.WriteString(prompts.NoSimilarBrands)
		return b.String()
	}

	for _, match := range matches {
		b.WriteString("- Brand Name: " + metadataOrNA(match.Metadata, "brand_name") + ", ")
		b.WriteString("Description: " + metadataOrNA(match.Metadata, "brand_description") + ", ")
		b.WriteString("Industry: " + metadataOrNA(match.Metadata, "brand_industry") + ", ")
		b.WriteString("Keywords: " + metadataOrNA(match.Metadata, "company_keywords") + "\n")
	}

	return b.String()
}

func metadataOrNA(metadata map[string]string, key string) string {
	if value, ok := metadata[key]; ok && value != "" {
		return value
	}
	return prompts.MissingMetadata
}
