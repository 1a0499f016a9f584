package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/timmy/brandkit/internal/domain"
	"github.com/timmy/brandkit/internal/repository"
)

type fakeBatchEmbedder struct {
	err   error
	calls int
}

func (f *fakeBatchEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i]))}
	}
	return vectors, nil
}

func (f *fakeBatchEmbedder) GetModel() string { return "test-embedder" }

type fakeIndex struct {
	batches [][]repository.IndexEntry
	deleted []string
	failAt  int // zero-based batch index to fail on, -1 for never
}

func (f *fakeIndex) UpsertBatch(ctx context.Context, entries []repository.IndexEntry) error {
	if f.failAt >= 0 && len(f.batches) == f.failAt {
		return errors.New("index unavailable")
	}
	f.batches = append(f.batches, entries)
	return nil
}

func (f *fakeIndex) Delete(ctx context.Context, pointID string) error {
	f.deleted = append(f.deleted, pointID)
	return nil
}

func (f *fakeIndex) Collection() string { return "brandkit-test" }

type fakeRecordStore struct {
	err  error
	rows []*domain.BrandRecord
}

func (f *fakeRecordStore) UpsertBatch(ctx context.Context, records []*domain.BrandRecord) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, records...)
	return nil
}

type sliceSource struct {
	records []domain.BrandRecord
}

func (s *sliceSource) GetSourceID() string    { return "slice" }
func (s *sliceSource) GetDisplayName() string { return "Slice" }

func (s *sliceSource) FetchBatch(ctx context.Context, cursor string, limit int) ([]domain.BrandRecord, string, error) {
	start := 0
	if cursor != "" {
		var err error
		start, err = strconv.Atoi(cursor)
		if err != nil {
			return nil, "", err
		}
	}
	if start >= len(s.records) {
		return nil, "", nil
	}
	end := start + limit
	if end > len(s.records) {
		end = len(s.records)
	}
	next := ""
	if end < len(s.records) {
		next = strconv.Itoa(end)
	}
	return s.records[start:end], next, nil
}

func makeRecords(n int) []domain.BrandRecord {
	records := make([]domain.BrandRecord, n)
	for i := range records {
		records[i] = domain.BrandRecord{
			BrandName:        fmt.Sprintf("Brand %d", i),
			BrandDescription: fmt.Sprintf("description %d", i),
			BrandIndustry:    "Tech",
		}
	}
	return records
}

func newTestIngest(index VectorIndex, emb BatchEmbedder, batchSize int) *IngestService {
	return NewIngestService(index, emb, nil, nil, nil, &IngestConfig{BatchSize: batchSize})
}

// TestIngestFromSource verifies records are embedded and upserted in batches
func TestIngestFromSource(t *testing.T) {
	index := &fakeIndex{failAt: -1}
	emb := &fakeBatchEmbedder{}
	src := &sliceSource{records: makeRecords(7)}

	stats, err := newTestIngest(index, emb, 3).IngestFromSource(context.Background(), src, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalRecords != 7 {
		t.Errorf("total: got %d, want 7", stats.TotalRecords)
	}
	if stats.UpsertedRecords != 7 {
		t.Errorf("upserted: got %d, want 7", stats.UpsertedRecords)
	}
	if stats.BatchesCommitted != 3 {
		t.Errorf("batches: got %d, want 3", stats.BatchesCommitted)
	}
	if len(index.batches) != 3 {
		t.Fatalf("index batches: got %d, want 3", len(index.batches))
	}
	if len(index.batches[0]) != 3 || len(index.batches[2]) != 1 {
		t.Errorf("batch sizes: got %d/%d/%d, want 3/3/1",
			len(index.batches[0]), len(index.batches[1]), len(index.batches[2]))
	}
}

// TestIngestFromSourceLimit verifies the limit caps fetched records
func TestIngestFromSourceLimit(t *testing.T) {
	index := &fakeIndex{failAt: -1}
	src := &sliceSource{records: makeRecords(10)}

	stats, err := newTestIngest(index, &fakeBatchEmbedder{}, 4).IngestFromSource(context.Background(), src, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRecords != 5 {
		t.Errorf("total: got %d, want 5", stats.TotalRecords)
	}
}

// TestIngestFromSourceBatchFailure verifies the failing batch index is reported
// and earlier batches stay committed
func TestIngestFromSourceBatchFailure(t *testing.T) {
	index := &fakeIndex{failAt: 1}
	src := &sliceSource{records: makeRecords(9)}

	stats, err := newTestIngest(index, &fakeBatchEmbedder{}, 3).IngestFromSource(context.Background(), src, 0)

	var bErr *repository.BatchError
	if !errors.As(err, &bErr) {
		t.Fatalf("expected batch error, got %v", err)
	}
	if bErr.Batch != 1 {
		t.Errorf("failing batch: got %d, want 1", bErr.Batch)
	}
	if bErr.Committed != 3 {
		t.Errorf("committed entries: got %d, want 3", bErr.Committed)
	}
	if len(index.batches) != 1 {
		t.Errorf("committed batches: got %d, want 1", len(index.batches))
	}
	if stats.UpsertedRecords != 3 {
		t.Errorf("stats upserted: got %d, want 3", stats.UpsertedRecords)
	}
}

// TestIngestFromSourceEmbeddingFailure verifies embedding errors abort the run
func TestIngestFromSourceEmbeddingFailure(t *testing.T) {
	index := &fakeIndex{failAt: -1}
	emb := &fakeBatchEmbedder{err: errors.New("quota exceeded")}
	src := &sliceSource{records: makeRecords(2)}

	_, err := newTestIngest(index, emb, 2).IngestFromSource(context.Background(), src, 0)

	var bErr *repository.BatchError
	if !errors.As(err, &bErr) {
		t.Fatalf("expected batch error, got %v", err)
	}
	if !errors.Is(err, emb.err) {
		t.Errorf("cause lost: %v", err)
	}
	if len(index.batches) != 0 {
		t.Errorf("index received %d batches despite embed failure", len(index.batches))
	}
}

// TestIngestRollsBackIndexOnRecordStoreFailure verifies the batch's points
// are deleted from the index when bookkeeping fails
func TestIngestRollsBackIndexOnRecordStoreFailure(t *testing.T) {
	index := &fakeIndex{failAt: -1}
	store := &fakeRecordStore{err: errors.New("disk full")}
	src := &sliceSource{records: makeRecords(3)}

	svc := NewIngestService(index, &fakeBatchEmbedder{}, store, nil, nil, &IngestConfig{BatchSize: 3})
	stats, err := svc.IngestFromSource(context.Background(), src, 0)

	var bErr *repository.BatchError
	if !errors.As(err, &bErr) {
		t.Fatalf("expected batch error, got %v", err)
	}
	if !errors.Is(err, store.err) {
		t.Errorf("cause lost: %v", err)
	}
	if len(index.deleted) != 3 {
		t.Fatalf("rolled back points: got %d, want 3", len(index.deleted))
	}
	for i, entry := range index.batches[0] {
		if index.deleted[i] != entry.ID {
			t.Errorf("deleted ID %d: got %s, want %s", i, index.deleted[i], entry.ID)
		}
	}
	if stats.UpsertedRecords != 0 {
		t.Errorf("stats upserted: got %d, want 0", stats.UpsertedRecords)
	}
}

// TestIngestPersistsRecordRows verifies bookkeeping rows carry the point ID
// and embedding model
func TestIngestPersistsRecordRows(t *testing.T) {
	index := &fakeIndex{failAt: -1}
	store := &fakeRecordStore{}
	src := &sliceSource{records: makeRecords(2)}

	svc := NewIngestService(index, &fakeBatchEmbedder{}, store, nil, nil, &IngestConfig{BatchSize: 10})
	if _, err := svc.IngestFromSource(context.Background(), src, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.rows) != 2 {
		t.Fatalf("persisted rows: got %d, want 2", len(store.rows))
	}
	for i, row := range store.rows {
		if row.ID != index.batches[0][i].ID {
			t.Errorf("row %d ID: got %s, want %s", i, row.ID, index.batches[0][i].ID)
		}
		if row.EmbeddingModel != "test-embedder" {
			t.Errorf("row %d embedding model: got %q", i, row.EmbeddingModel)
		}
	}
}

// TestDeterministicPointID verifies the same record always maps to the same UUID
func TestDeterministicPointID(t *testing.T) {
	rec := &domain.BrandRecord{BrandName: "Solara", BrandDescription: "skincare"}

	id1 := DeterministicPointID("brandkit", rec)
	id2 := DeterministicPointID("brandkit", rec)
	if id1 != id2 {
		t.Errorf("ID not stable: %s vs %s", id1, id2)
	}
	if len(id1) != 36 {
		t.Errorf("invalid UUID length: got %d, want 36", len(id1))
	}

	other := &domain.BrandRecord{BrandName: "Lumia", BrandDescription: "skincare"}
	if DeterministicPointID("brandkit", other) == id1 {
		t.Error("different records share an ID")
	}
	if DeterministicPointID("other-collection", rec) == id1 {
		t.Error("different collections share an ID")
	}
}

// TestIngestEntriesCarryDeterministicIDs verifies upserted entries use content IDs
func TestIngestEntriesCarryDeterministicIDs(t *testing.T) {
	index := &fakeIndex{failAt: -1}
	records := makeRecords(2)
	src := &sliceSource{records: records}

	if _, err := newTestIngest(index, &fakeBatchEmbedder{}, 10).IngestFromSource(context.Background(), src, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, entry := range index.batches[0] {
		want := DeterministicPointID("brandkit-test", &records[i])
		if entry.ID != want {
			t.Errorf("entry %d ID: got %s, want %s", i, entry.ID, want)
		}
	}
}

// TestBuildMetadata verifies payload assembly and list-column JSON encoding
func TestBuildMetadata(t *testing.T) {
	rec := &domain.BrandRecord{
		BrandName:       "Solara",
		BrandTagline:    "Glow naturally",
		BrandColors:     "green, gold",
		CompanyKeywords: "natural, vegan",
	}

	md := BuildMetadata(rec)

	if md["brand_name"] != "Solara" {
		t.Errorf("brand_name: got %q", md["brand_name"])
	}
	if md["brand_tagline"] != "Glow naturally" {
		t.Errorf("brand_tagline: got %q", md["brand_tagline"])
	}
	if md["brand_colors"] != `"green, gold"` {
		t.Errorf("brand_colors not JSON-encoded: got %q", md["brand_colors"])
	}
	if md["company_keywords"] != `"natural, vegan"` {
		t.Errorf("company_keywords not JSON-encoded: got %q", md["company_keywords"])
	}
	if md["brand_fonts"] != "" {
		t.Errorf("empty column should stay empty: got %q", md["brand_fonts"])
	}
	if len(md) != len(domain.FieldOrder)+1 {
		t.Errorf("metadata keys: got %d, want %d", len(md), len(domain.FieldOrder)+1)
	}
}
