package service

import (
	"regexp"
	"strings"
)

// Best-effort structured extraction from the generator's free text. The
// generator is instructed to emit numbered bold-labeled sections, but
// nothing guarantees it complies; every function here degrades to partial
// or empty results instead of failing.

var (
	// sectionMarker matches boundaries of the form `1. **Color Theme**:`.
	sectionMarker = regexp.MustCompile(`(\d+\.\s+\*\*[^*]+\*\*:)`)

	// sectionLabel pulls the bare label out of a matched marker.
	sectionLabel = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// hexColor matches a # followed by exactly six hex digits. The trailing
	// boundary keeps longer digit runs from matching on their prefix.
	hexColor = regexp.MustCompile(`#[0-9A-Fa-f]{6}\b`)

	// logoConceptSection matches the Logo Concept section body: everything
	// after the `4. **Logo Concept**:` marker up to the next numbered
	// marker or end of text.
	logoConceptSection = regexp.MustCompile(`(?s)4\.\s+\*\*Logo Concept\*\*:(.*?)(\d+\.\s+\*\*|\z)`)
)

const (
	maxExtractedColors = 3
	conceptSummaryMax  = 100
)

// Section is one labeled chunk of the generated brand kit.
type Section struct {
	Marker string // full marker text, e.g. "1. **Color Theme**:"
	Title  string // bare label, e.g. "Color Theme"
	Body   string // trimmed text between this marker and the next
}

// ParseSections splits generated text on numbered bold-labeled markers.
// Text before the first marker is dropped, as is anything not following
// the marker pattern. Zero matching markers yields zero sections, never an
// error.
func ParseSections(text string) []Section {
	parts := sectionMarker.Split(text, -1)
	markers := sectionMarker.FindAllString(text, -1)

	// parts[0] is the preamble before the first marker; each subsequent
	// part pairs with the marker that preceded it.
	sections := make([]Section, 0, len(markers))
	for i, marker := range markers {
		title := ""
		if m := sectionLabel.FindStringSubmatch(marker); m != nil {
			title = strings.TrimSpace(m[1])
		}
		sections = append(sections, Section{
			Marker: strings.TrimSpace(marker),
			Title:  title,
			Body:   strings.TrimSpace(parts[i+1]),
		})
	}
	return sections
}

// SectionMap converts parsed sections to a title -> body mapping.
func SectionMap(sections []Section) map[string]string {
	m := make(map[string]string, len(sections))
	for _, s := range sections {
		m[s.Title] = s.Body
	}
	return m
}

// FormatSections re-renders parsed sections as markdown headings with
// blank-line separated bodies.
func FormatSections(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString("### " + s.Marker + "\n" + s.Body + "\n\n")
	}
	return b.String()
}

// ExtractColors returns up to three hex color codes in order of first
// appearance. Malformed codes (wrong length, bad digits) never match.
// Duplicates are not removed; the image prompt tolerates them.
func ExtractColors(text string) []string {
	matches := hexColor.FindAllString(text, maxExtractedColors)
	return matches
}

// ExtractConceptSummary locates the Logo Concept section and returns its
// body trimmed and truncated to 100 characters, with a trailing ellipsis
// when truncated. Returns "" when the section is absent.
func ExtractConceptSummary(text string) string {
	m := logoConceptSection.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	concept := strings.TrimSpace(m[1])
	runes := []rune(concept)
	if len(runes) > conceptSummaryMax {
		return string(runes[:conceptSummaryMax]) + "..."
	}
	return concept
}
