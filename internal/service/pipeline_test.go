package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/timmy/brandkit/internal/domain"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	return f.vector, f.err
}

type fakeSearcher struct {
	matches []domain.MatchResult
	err     error
	gotTopK int
}

func (f *fakeSearcher) Search(ctx context.Context, vector []float32, topK int) ([]domain.MatchResult, error) {
	f.gotTopK = topK
	return f.matches, f.err
}

type fakeGenerator struct {
	text       string
	err        error
	gotContext string
}

func (f *fakeGenerator) Generate(ctx context.Context, combinedContext string) (string, error) {
	f.gotContext = combinedContext
	return f.text, f.err
}

type fakeImageGen struct {
	urls  []string
	errs  []error
	calls int
}

func (f *fakeImageGen) Generate(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.urls) {
		return f.urls[i], nil
	}
	return fmt.Sprintf("https://img.example/%d.png", i), nil
}

type fakeArchiver struct {
	err   error
	calls int
}

func (f *fakeArchiver) Archive(ctx context.Context, kitID string, slot int, imageURL string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("https://store.example/kits/%s/logo_%d.png", kitID, slot), nil
}

func newTestPipeline(emb *fakeEmbedder, srch *fakeSearcher, gen *fakeGenerator, img *fakeImageGen, arch Archiver) *PipelineService {
	return NewPipelineService(emb, srch, gen, img, arch, nil, 10, 3)
}

// TestPipelineRunZeroMatches verifies a full run with an empty index
func TestPipelineRunZeroMatches(t *testing.T) {
	emb := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	srch := &fakeSearcher{}
	gen := &fakeGenerator{text: sampleKit}
	img := &fakeImageGen{}

	kit, err := newTestPipeline(emb, srch, gen, img, nil).GenerateKit(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if kit.KitID == "" {
		t.Error("empty kit ID")
	}
	if kit.MatchCount != 0 {
		t.Errorf("match count: got %d, want 0", kit.MatchCount)
	}
	if len(kit.Sections) != 4 {
		t.Errorf("sections: got %d, want 4", len(kit.Sections))
	}
	if len(kit.Colors) != 3 {
		t.Errorf("colors: got %d, want 3", len(kit.Colors))
	}
	if len(kit.Images) != 3 {
		t.Errorf("image slots: got %d, want 3", len(kit.Images))
	}
	if img.calls != 3 {
		t.Errorf("image calls: got %d, want 3", img.calls)
	}
	if srch.gotTopK != 10 {
		t.Errorf("top_k: got %d, want 10", srch.gotTopK)
	}
	if gen.gotContext == "" {
		t.Error("generator never received context")
	}
}

// TestPipelineRunValidationHalts verifies no downstream call on invalid input
func TestPipelineRunValidationHalts(t *testing.T) {
	emb := &fakeEmbedder{vector: []float32{0.1}}
	input := testInput()
	input.BrandName = ""

	_, err := newTestPipeline(emb, &fakeSearcher{}, &fakeGenerator{}, &fakeImageGen{}, nil).GenerateKit(context.Background(), input)

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Field != "brand_name" {
		t.Errorf("failing field: got %q, want brand_name", vErr.Field)
	}
	if emb.calls != 0 {
		t.Errorf("embedder called %d times after validation failure", emb.calls)
	}
}

// TestPipelineRunRetrievalFailure verifies a search error halts the run
func TestPipelineRunRetrievalFailure(t *testing.T) {
	srch := &fakeSearcher{err: errors.New("connection refused")}
	img := &fakeImageGen{}

	_, err := newTestPipeline(&fakeEmbedder{vector: []float32{0.1}}, srch, &fakeGenerator{}, img, nil).GenerateKit(context.Background(), testInput())

	var rErr *RetrievalError
	if !errors.As(err, &rErr) {
		t.Fatalf("expected retrieval error, got %v", err)
	}
	if img.calls != 0 {
		t.Errorf("image generator called %d times after retrieval failure", img.calls)
	}
}

// TestPipelineRunGenerationFailure verifies a generation error halts before images
func TestPipelineRunGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	img := &fakeImageGen{}

	_, err := newTestPipeline(&fakeEmbedder{vector: []float32{0.1}}, &fakeSearcher{}, gen, img, nil).GenerateKit(context.Background(), testInput())

	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected generation error, got %v", err)
	}
	if !errors.Is(err, gen.err) {
		t.Errorf("wrapped cause lost: %v", err)
	}
	if img.calls != 0 {
		t.Errorf("image generator called %d times after generation failure", img.calls)
	}
}

// TestPipelineRunImageFailureIsolated verifies a failed slot does not stop the others
func TestPipelineRunImageFailureIsolated(t *testing.T) {
	img := &fakeImageGen{errs: []error{nil, errors.New("content policy"), nil}}

	kit, err := newTestPipeline(&fakeEmbedder{vector: []float32{0.1}}, &fakeSearcher{}, &fakeGenerator{text: sampleKit}, img, nil).GenerateKit(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if img.calls != 3 {
		t.Errorf("image calls: got %d, want 3", img.calls)
	}
	if kit.Images[0].Error != "" || kit.Images[0].URL == "" {
		t.Errorf("slot 0 should succeed: %+v", kit.Images[0])
	}
	if kit.Images[1].Error == "" || kit.Images[1].URL != "" {
		t.Errorf("slot 1 should fail: %+v", kit.Images[1])
	}
	if kit.Images[2].Error != "" || kit.Images[2].URL == "" {
		t.Errorf("slot 2 should succeed: %+v", kit.Images[2])
	}
}

// TestPipelineRunArchiverFailureNonFatal verifies archival errors stay on the slot
func TestPipelineRunArchiverFailureNonFatal(t *testing.T) {
	arch := &fakeArchiver{err: errors.New("bucket gone")}

	kit, err := newTestPipeline(&fakeEmbedder{vector: []float32{0.1}}, &fakeSearcher{}, &fakeGenerator{text: sampleKit}, &fakeImageGen{}, arch).GenerateKit(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, slot := range kit.Images {
		if slot.URL == "" {
			t.Errorf("slot %d lost its provider URL", i)
		}
		if slot.ArchivedURL != "" {
			t.Errorf("slot %d has archived URL despite failure", i)
		}
	}
}

// TestPipelineRunArchiverSuccess verifies archived URLs land on their slots
func TestPipelineRunArchiverSuccess(t *testing.T) {
	arch := &fakeArchiver{}

	kit, err := newTestPipeline(&fakeEmbedder{vector: []float32{0.1}}, &fakeSearcher{}, &fakeGenerator{text: sampleKit}, &fakeImageGen{}, arch).GenerateKit(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if arch.calls != 3 {
		t.Errorf("archive calls: got %d, want 3", arch.calls)
	}
	for i, slot := range kit.Images {
		if slot.ArchivedURL == "" {
			t.Errorf("slot %d missing archived URL", i)
		}
	}
}

// TestPipelineRunUnstructuredOutput verifies freeform model text still yields a kit
func TestPipelineRunUnstructuredOutput(t *testing.T) {
	gen := &fakeGenerator{text: "Freeform prose with no markers at all."}

	kit, err := newTestPipeline(&fakeEmbedder{vector: []float32{0.1}}, &fakeSearcher{}, gen, &fakeImageGen{}, nil).GenerateKit(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(kit.Sections) != 0 {
		t.Errorf("sections: got %d, want 0", len(kit.Sections))
	}
	if kit.Formatted != gen.text {
		t.Errorf("formatted should fall back to raw text: %q", kit.Formatted)
	}
	if kit.ConceptSummary != "" {
		t.Errorf("concept: got %q, want \"\"", kit.ConceptSummary)
	}
}
