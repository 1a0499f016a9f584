package service

import (
	"reflect"
	"strings"
	"testing"
)

const sampleKit = `Here is your brand kit.

1. **Color Theme**: Warm and earthy.
- #FF6B35 for energy
- #2E4057 for trust
- #90A955 for growth
- #F4F1DE as a neutral

2. **Font Theme**: Montserrat for headings, Lora for body text.

3. **Tagline**: Glow naturally.

4. **Logo Concept**: A rising sun over a leaf, drawn with a single continuous line.`

// TestParseSections verifies splitting on numbered bold-labeled markers
func TestParseSections(t *testing.T) {
	sections := ParseSections(sampleKit)
	if len(sections) != 4 {
		t.Fatalf("section count: got %d, want 4", len(sections))
	}

	if sections[0].Marker != "1. **Color Theme**:" {
		t.Errorf("first marker: got %q", sections[0].Marker)
	}
	if sections[0].Title != "Color Theme" {
		t.Errorf("first title: got %q", sections[0].Title)
	}
	if !strings.Contains(sections[0].Body, "#FF6B35") {
		t.Errorf("first body missing color list: %q", sections[0].Body)
	}
	if sections[3].Title != "Logo Concept" {
		t.Errorf("last title: got %q", sections[3].Title)
	}
	if !strings.HasPrefix(sections[3].Body, "A rising sun") {
		t.Errorf("last body: got %q", sections[3].Body)
	}
}

// TestParseSectionsNoMarkers verifies unstructured text yields zero sections
func TestParseSectionsNoMarkers(t *testing.T) {
	sections := ParseSections("The model decided to write freeform prose instead.")
	if len(sections) != 0 {
		t.Errorf("section count: got %d, want 0", len(sections))
	}
}

// TestParseSectionsDropsPreamble verifies text before the first marker is dropped
func TestParseSectionsDropsPreamble(t *testing.T) {
	sections := ParseSections("Preamble chatter.\n1. **Tagline**: Short and sweet.")
	if len(sections) != 1 {
		t.Fatalf("section count: got %d, want 1", len(sections))
	}
	if strings.Contains(sections[0].Body, "Preamble") {
		t.Errorf("preamble leaked into body: %q", sections[0].Body)
	}
}

// TestSectionMap verifies title keyed access to section bodies
func TestSectionMap(t *testing.T) {
	m := SectionMap(ParseSections(sampleKit))
	if m["Tagline"] != "Glow naturally." {
		t.Errorf("tagline body: got %q", m["Tagline"])
	}
	if _, ok := m["Color Theme"]; !ok {
		t.Error("missing Color Theme key")
	}
}

// TestExtractColors verifies hex extraction caps at three codes
func TestExtractColors(t *testing.T) {
	got := ExtractColors(sampleKit)
	want := []string{"#FF6B35", "#2E4057", "#90A955"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("colors: got %v, want %v", got, want)
	}
}

// TestExtractColorsMalformed verifies short and bad-digit codes never match
func TestExtractColorsMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"three digit shorthand", "use #FFF here", 0},
		{"non hex digits", "try #GGGGGG instead", 0},
		{"seven digits", "odd #1234567 run", 0},
		{"exactly six", "good #A1B2C3 code", 1},
		{"mixed case", "good #a1B2c3 code", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractColors(tc.text); len(got) != tc.want {
				t.Errorf("matches: got %v, want %d", got, tc.want)
			}
		})
	}
}

// TestExtractConceptSummary verifies the Logo Concept body is extracted
func TestExtractConceptSummary(t *testing.T) {
	got := ExtractConceptSummary(sampleKit)
	want := "A rising sun over a leaf, drawn with a single continuous line."
	if got != want {
		t.Errorf("concept: got %q, want %q", got, want)
	}
}

// TestExtractConceptSummaryTruncation verifies bodies over 100 chars gain an ellipsis
func TestExtractConceptSummaryTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := ExtractConceptSummary("4. **Logo Concept**: " + long)
	if len(got) != 103 {
		t.Errorf("truncated length: got %d, want 103", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
	if got[:100] != strings.Repeat("x", 100) {
		t.Errorf("truncated prefix wrong: %q", got[:100])
	}
}

// TestExtractConceptSummaryAbsent verifies "" when the section is missing
func TestExtractConceptSummaryAbsent(t *testing.T) {
	if got := ExtractConceptSummary("1. **Color Theme**: only colors here"); got != "" {
		t.Errorf("absent section: got %q, want \"\"", got)
	}
}

// TestExtractConceptSummaryStopsAtNextSection verifies the body ends at the next marker
func TestExtractConceptSummaryStopsAtNextSection(t *testing.T) {
	text := "4. **Logo Concept**: A leaf.\n5. **Extra**: ignored."
	got := ExtractConceptSummary(text)
	if got != "A leaf." {
		t.Errorf("concept: got %q, want %q", got, "A leaf.")
	}
}

// TestFormatSections verifies markdown heading rendering
func TestFormatSections(t *testing.T) {
	got := FormatSections(ParseSections("1. **Tagline**: Glow naturally."))
	want := "### 1. **Tagline**:\nGlow naturally.\n\n"
	if got != want {
		t.Errorf("formatted: got %q, want %q", got, want)
	}
}
