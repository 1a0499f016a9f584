package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/timmy/brandkit/internal/domain"
	"github.com/timmy/brandkit/internal/logger"
)

// EmbeddingProvider converts query text into a dense vector.
type EmbeddingProvider interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// VectorSearcher returns the nearest indexed brands for a query vector.
type VectorSearcher interface {
	Search(ctx context.Context, vector []float32, topK int) ([]domain.MatchResult, error)
}

// KitGenerator produces the brand kit text from an assembled context.
type KitGenerator interface {
	Generate(ctx context.Context, combinedContext string) (string, error)
}

// ImageGenerator produces a single logo image URL from a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Archiver persists generated logo images and returns a durable URL.
// Archival is best effort and never fails the pipeline.
type Archiver interface {
	Archive(ctx context.Context, kitID string, slot int, imageURL string) (string, error)
}

// ImageSlot is the outcome of one logo generation attempt. A failed slot
// carries the error message and leaves URL empty.
type ImageSlot struct {
	Index       int    `json:"index"`
	URL         string `json:"url,omitempty"`
	ArchivedURL string `json:"archived_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BrandKit is the full result of one pipeline run.
type BrandKit struct {
	KitID          string            `json:"kit_id"`
	RawText        string            `json:"raw_text"`
	Formatted      string            `json:"formatted"`
	Sections       map[string]string `json:"sections"`
	Colors         []string          `json:"colors"`
	ConceptSummary string            `json:"concept_summary"`
	LogoPrompt     string            `json:"logo_prompt"`
	Images         []ImageSlot       `json:"images"`
	MatchCount     int               `json:"match_count"`
}

// PipelineService orchestrates a full brand kit run: embed the query,
// retrieve similar brands, generate the kit text, parse it, and generate
// logo candidates.
type PipelineService struct {
	embedder   EmbeddingProvider
	searcher   VectorSearcher
	generator  KitGenerator
	imageGen   ImageGenerator
	archiver   Archiver
	logger     *logger.Logger
	topK       int
	imageCount int
}

// NewPipelineService wires the pipeline from its dependencies. The archiver
// may be nil, in which case logos are returned by provider URL only.
func NewPipelineService(
	embedder EmbeddingProvider,
	searcher VectorSearcher,
	generator KitGenerator,
	imageGen ImageGenerator,
	archiver Archiver,
	log *logger.Logger,
	topK int,
	imageCount int,
) *PipelineService {
	if topK <= 0 {
		topK = 10
	}
	if imageCount <= 0 {
		imageCount = 3
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &PipelineService{
		embedder:   embedder,
		searcher:   searcher,
		generator:  generator,
		imageGen:   imageGen,
		archiver:   archiver,
		logger:     log,
		topK:       topK,
		imageCount: imageCount,
	}
}

func (s *PipelineService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// Run executes the pipeline for one brand input. Validation and the stages
// through text generation are fatal on error; individual logo generations
// fail in isolation and are reported in their slot.
func (s *PipelineService) GenerateKit(ctx context.Context, input *domain.BrandInput) (*BrandKit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	kitID := uuid.New().String()
	ctx = logger.SetKitID(ctx, kitID)
	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldComponent: "pipeline",
		logger.FieldBrand:     input.BrandName,
	})

	queryText := BuildQueryText(input)
	vector, err := s.embedder.EmbedQuery(ctx, queryText)
	if err != nil {
		logger.CtxError(ctx, "Failed to embed brand query: error=%v", err)
		return nil, &EmbeddingError{Err: err}
	}

	matches, err := s.searcher.Search(ctx, vector, s.topK)
	if err != nil {
		logger.CtxError(ctx, "Failed to retrieve similar brands: error=%v", err)
		return nil, &RetrievalError{Err: err}
	}
	logger.CtxDebug(ctx, "Retrieved similar brands: matches=%d, top_k=%d", len(matches), s.topK)

	combined := AssembleContext(input, matches)
	rawText, err := s.generator.Generate(ctx, combined)
	if err != nil {
		logger.CtxError(ctx, "Failed to generate brand kit text: error=%v", err)
		return nil, &GenerationError{Err: err}
	}

	sections := ParseSections(rawText)
	colors := ExtractColors(rawText)
	concept := ExtractConceptSummary(rawText)
	logoPrompt := BuildLogoPrompt(input, colors, concept)

	formatted := FormatSections(sections)
	if len(sections) == 0 {
		// Unstructured model output is still a usable kit.
		formatted = rawText
	}

	kit := &BrandKit{
		KitID:          kitID,
		RawText:        rawText,
		Formatted:      formatted,
		Sections:       SectionMap(sections),
		Colors:         colors,
		ConceptSummary: concept,
		LogoPrompt:     logoPrompt,
		Images:         s.generateImages(ctx, kitID, logoPrompt),
		MatchCount:     len(matches),
	}

	logger.CtxInfo(ctx, "Brand kit generated: sections=%d, colors=%d, images=%d",
		len(sections), len(colors), len(kit.Images))
	return kit, nil
}

// generateImages runs the configured number of logo generations. Each slot
// is independent: a failure is recorded on the slot and the loop continues.
func (s *PipelineService) generateImages(ctx context.Context, kitID, prompt string) []ImageSlot {
	slots := make([]ImageSlot, 0, s.imageCount)
	for i := 0; i < s.imageCount; i++ {
		slot := ImageSlot{Index: i}
		url, err := s.imageGen.Generate(ctx, prompt)
		if err != nil {
			slot.Error = fmt.Sprintf("logo generation failed: %v", err)
			logger.CtxWarn(ctx, "Logo generation failed: slot=%d, error=%v", i, err)
			slots = append(slots, slot)
			continue
		}
		slot.URL = url
		if s.archiver != nil {
			archived, err := s.archiver.Archive(ctx, kitID, i, url)
			if err != nil {
				logger.CtxWarn(ctx, "Logo archival failed: slot=%d, error=%v", i, err)
			} else {
				slot.ArchivedURL = archived
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
