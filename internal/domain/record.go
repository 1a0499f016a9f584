package domain

import "time"

// RecordField names a column of the brand dataset. The set of fields and
// their order is fixed: weighted text construction and index payloads both
// iterate over FieldOrder.
type RecordField string

const (
	FieldBrandTagline     RecordField = "brand_tagline"
	FieldBrandDescription RecordField = "brand_description"
	FieldBrandMission     RecordField = "brand_mission"
	FieldLogoDescription  RecordField = "logo_description"
	FieldBrandLogo        RecordField = "brand_logo"
	FieldBrandIndustry    RecordField = "brand_industry"
	FieldBrandColors      RecordField = "brand_colors"
	FieldBrandFonts       RecordField = "brand_fonts"
	FieldBrandPersonality RecordField = "brand_personality"
	FieldCompanyKeywords  RecordField = "company_keywords"
	FieldTargetSegment    RecordField = "target_segment"
)

// FieldOrder is the canonical iteration order over brand record fields.
var FieldOrder = []RecordField{
	FieldBrandTagline,
	FieldBrandDescription,
	FieldBrandMission,
	FieldLogoDescription,
	FieldBrandLogo,
	FieldBrandIndustry,
	FieldBrandColors,
	FieldBrandFonts,
	FieldBrandPersonality,
	FieldCompanyKeywords,
	FieldTargetSegment,
}

// FieldWeights maps each record field to its embedding weight in [0,1].
// A field's text is repeated floor(weight*10) times when building the
// combined weighted text, biasing the vector toward higher-weighted fields.
var FieldWeights = map[RecordField]float64{
	FieldBrandTagline:     0.5,
	FieldBrandDescription: 1.0,
	FieldBrandMission:     0.5,
	FieldLogoDescription:  0.6,
	FieldBrandLogo:        0.5,
	FieldBrandIndustry:    0.8,
	FieldBrandColors:      0.6,
	FieldBrandFonts:       0.5,
	FieldBrandPersonality: 0.5,
	FieldCompanyKeywords:  0.9,
	FieldTargetSegment:    0.7,
}

// BrandRecord is one row of the brand dataset. Any field may be empty;
// missing CSV cells are coerced to "" before the record is built. It doubles
// as the bookkeeping row persisted after a successful upsert, keyed by the
// deterministic index point ID.
type BrandRecord struct {
	ID               string    `gorm:"type:text;primaryKey" json:"id"`
	BrandName        string    `gorm:"type:text;index:idx_brand_records_name" json:"brand_name"`
	BrandTagline     string    `gorm:"type:text" json:"brand_tagline"`
	BrandDescription string    `gorm:"type:text" json:"brand_description"`
	BrandMission     string    `gorm:"type:text" json:"brand_mission"`
	LogoDescription  string    `gorm:"type:text" json:"logo_description"`
	BrandLogo        string    `gorm:"type:text" json:"brand_logo"`
	BrandIndustry    string    `gorm:"type:text;index:idx_brand_records_industry" json:"brand_industry"`
	BrandColors      string    `gorm:"type:text" json:"brand_colors"`
	BrandFonts       string    `gorm:"type:text" json:"brand_fonts"`
	BrandPersonality string    `gorm:"type:text" json:"brand_personality"`
	CompanyKeywords  string    `gorm:"type:text" json:"company_keywords"`
	TargetSegment    string    `gorm:"type:text" json:"target_segment"`
	EmbeddingModel   string    `gorm:"type:text" json:"embedding_model"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the database table name for BrandRecord.
func (BrandRecord) TableName() string {
	return "brand_records"
}

// Field returns the record's value for the named field, or "" for unknown
// fields. Keeping this switch in one place lets weighted text construction
// and payload assembly share the same field access.
func (r *BrandRecord) Field(f RecordField) string {
	switch f {
	case FieldBrandTagline:
		return r.BrandTagline
	case FieldBrandDescription:
		return r.BrandDescription
	case FieldBrandMission:
		return r.BrandMission
	case FieldLogoDescription:
		return r.LogoDescription
	case FieldBrandLogo:
		return r.BrandLogo
	case FieldBrandIndustry:
		return r.BrandIndustry
	case FieldBrandColors:
		return r.BrandColors
	case FieldBrandFonts:
		return r.BrandFonts
	case FieldBrandPersonality:
		return r.BrandPersonality
	case FieldCompanyKeywords:
		return r.CompanyKeywords
	case FieldTargetSegment:
		return r.TargetSegment
	}
	return ""
}

// MatchResult is a single nearest-neighbor hit returned by the vector index,
// ordered by descending similarity score.
type MatchResult struct {
	ID       string            `json:"id"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}
