package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/timmy/brandkit/internal/domain"
)

const SourceID = "csvfile"

// Adapter reads brand records from a CSV file with a header row. Columns are
// matched by header name; absent columns and empty cells both contribute ""
// to the record, so partially filled datasets never fail the load.
type Adapter struct {
	path    string
	records []domain.BrandRecord // Cached records
	loaded  bool
}

// NewAdapter creates a new CSV dataset adapter.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// GetSourceID returns the unique identifier for this source
func (a *Adapter) GetSourceID() string {
	return SourceID
}

// GetDisplayName returns a human-readable name for this source
func (a *Adapter) GetDisplayName() string {
	return filepath.Base(a.path)
}

// FetchBatch fetches a batch of brand records
func (a *Adapter) FetchBatch(ctx context.Context, cursor string, limit int) ([]domain.BrandRecord, string, error) {
	// Load the whole file on first call
	if !a.loaded {
		if err := a.load(); err != nil {
			return nil, "", fmt.Errorf("failed to load dataset: %w", err)
		}
		a.loaded = true
	}

	// Parse cursor (row index)
	startIndex := 0
	if cursor != "" {
		var err error
		startIndex, err = strconv.Atoi(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor: %w", err)
		}
	}

	if startIndex >= len(a.records) {
		return []domain.BrandRecord{}, "", nil // No more records
	}

	endIndex := startIndex + limit
	if limit <= 0 || endIndex > len(a.records) {
		endIndex = len(a.records)
	}

	batch := a.records[startIndex:endIndex]

	nextCursor := ""
	if endIndex < len(a.records) {
		nextCursor = strconv.Itoa(endIndex)
	}

	return batch, nextCursor, nil
}

func (a *Adapter) load() error {
	f, err := os.Open(a.path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return err
	}
	a.records = records
	return nil
}

// ReadRecords parses brand records from CSV data with a header row.
func ReadRecords(r io.Reader) ([]domain.BrandRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be ragged; short rows read as missing cells
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var records []domain.BrandRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+2, err)
		}

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, domain.BrandRecord{
			BrandName:        cell("brand_name"),
			BrandTagline:     cell("brand_tagline"),
			BrandDescription: cell("brand_description"),
			BrandMission:     cell("brand_mission"),
			LogoDescription:  cell("logo_description"),
			BrandLogo:        cell("brand_logo"),
			BrandIndustry:    cell("brand_industry"),
			BrandColors:      cell("brand_colors"),
			BrandFonts:       cell("brand_fonts"),
			BrandPersonality: cell("brand_personality"),
			CompanyKeywords:  cell("company_keywords"),
			TargetSegment:    cell("target_segment"),
		})
	}

	return records, nil
}
