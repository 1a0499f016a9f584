package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `brand_name,brand_tagline,brand_description,brand_industry,company_keywords
Acme,Everything you need,General supplies for coyotes,Retail,"[""tools"",""gadgets""]"
Nimbus,,Cloud infrastructure,Technology,
Orchard,Fresh daily,,Food,
`

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadRecords() error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].BrandName != "Acme" {
		t.Errorf("BrandName = %q, want Acme", records[0].BrandName)
	}
	if records[0].CompanyKeywords != `["tools","gadgets"]` {
		t.Errorf("CompanyKeywords = %q", records[0].CompanyKeywords)
	}

	// Absent cells come back as empty strings, never errors.
	if records[1].BrandTagline != "" {
		t.Errorf("missing tagline = %q, want empty", records[1].BrandTagline)
	}
	if records[2].BrandDescription != "" {
		t.Errorf("missing description = %q, want empty", records[2].BrandDescription)
	}

	// Columns not present in the header are empty too.
	if records[0].BrandMission != "" {
		t.Errorf("absent column = %q, want empty", records[0].BrandMission)
	}
}

func TestReadRecordsEmptyInput(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadRecords() error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestFetchBatchPagination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brands.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	adapter := NewAdapter(path)
	ctx := context.Background()

	first, cursor, err := adapter.FetchBatch(ctx, "", 2)
	if err != nil {
		t.Fatalf("FetchBatch() error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first batch size = %d, want 2", len(first))
	}
	if cursor != "2" {
		t.Fatalf("cursor = %q, want \"2\"", cursor)
	}

	second, cursor, err := adapter.FetchBatch(ctx, cursor, 2)
	if err != nil {
		t.Fatalf("FetchBatch() error: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("second batch size = %d, want 1", len(second))
	}
	if cursor != "" {
		t.Fatalf("cursor = %q, want empty at end", cursor)
	}
	if second[0].BrandName != "Orchard" {
		t.Errorf("second batch brand = %q, want Orchard", second[0].BrandName)
	}
}
