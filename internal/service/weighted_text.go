package service

import (
	"strings"

	"github.com/timmy/brandkit/internal/domain"
)

// BuildWeightedText builds the combined text a brand record is embedded
// under. Each field's text is repeated floor(weight*10) times with a
// trailing space, fields are concatenated in domain.FieldOrder, and the
// whole string is trimmed once at the end. Empty fields contribute nothing
// beyond their separators, which the final trim and the embedding model's
// tokenizer both tolerate.
func BuildWeightedText(record *domain.BrandRecord, weights map[domain.RecordField]float64) string {
	var b strings.Builder
	for _, field := range domain.FieldOrder {
		text := record.Field(field)
		repeat := int(weights[field] * 10)
		for i := 0; i < repeat; i++ {
			b.WriteString(text)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// BuildQueryText builds the text embedded for a user query: brand name,
// description, and keywords joined with spaces. Unlike ingestion this does
// NOT apply the field-weight scheme; the asymmetry is inherited from the
// original retrieval behavior and kept so query vectors stay comparable
// with the existing index.
func BuildQueryText(input *domain.BrandInput) string {
	return input.BrandName + " " + input.BrandDescription + " " + strings.Join(input.CompanyKeywords, " ")
}
