package domain

import "fmt"

// Personality represents one of the five brand personality dimensions.
// Values include PersonalityCompetence, PersonalityExcitement,
// PersonalitySincerity, PersonalitySophistication, and PersonalityRuggedness.
type Personality string

const (
	PersonalityCompetence     Personality = "Competence"
	PersonalityExcitement     Personality = "Excitement"
	PersonalitySincerity      Personality = "Sincerity"
	PersonalitySophistication Personality = "Sophistication"
	PersonalityRuggedness     Personality = "Ruggedness"
)

// IsValid reports whether p is one of the known personality dimensions.
func (p Personality) IsValid() bool {
	switch p {
	case PersonalityCompetence, PersonalityExcitement, PersonalitySincerity,
		PersonalitySophistication, PersonalityRuggedness:
		return true
	}
	return false
}

// BrandInput holds the attributes a user submits to generate a brand kit.
// Every field is required; Validate must pass before the input reaches the
// pipeline.
type BrandInput struct {
	BrandName        string      `json:"brand_name"`
	BrandDescription string      `json:"brand_description"`
	BrandIndustry    string      `json:"brand_industry"`
	CompanyKeywords  []string    `json:"company_keywords"`
	BrandPersonality Personality `json:"brand_personality"`
	TargetSegment    string      `json:"target_segment"`
}

// ValidationError reports the first missing or invalid BrandInput field.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Validate checks that every required field is populated. Fields are checked
// in declaration order and the first failure is returned, so callers always
// see exactly one error naming one field.
func (i *BrandInput) Validate() error {
	if i.BrandName == "" {
		return &ValidationError{Field: "brand_name"}
	}
	if i.BrandDescription == "" {
		return &ValidationError{Field: "brand_description"}
	}
	if i.BrandIndustry == "" {
		return &ValidationError{Field: "brand_industry"}
	}
	if len(i.CompanyKeywords) == 0 {
		return &ValidationError{Field: "company_keywords"}
	}
	if i.BrandPersonality == "" || !i.BrandPersonality.IsValid() {
		return &ValidationError{Field: "brand_personality"}
	}
	if i.TargetSegment == "" {
		return &ValidationError{Field: "target_segment"}
	}
	return nil
}
