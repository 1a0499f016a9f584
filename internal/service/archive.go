package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/timmy/brandkit/internal/logger"
	"github.com/timmy/brandkit/internal/storage"
)

// ArchiveService downloads generated logo images and stores them under a
// stable key so kits survive the expiry of provider-hosted URLs.
type ArchiveService struct {
	storage storage.ObjectStorage
	client  *resty.Client
	logger  *logger.Logger
}

// NewArchiveService creates a new archive service.
func NewArchiveService(store storage.ObjectStorage, log *logger.Logger) *ArchiveService {
	if log == nil {
		log = logger.GetDefault()
	}
	return &ArchiveService{
		storage: store,
		client:  resty.New().SetTimeout(60 * time.Second),
		logger:  log,
	}
}

// Archive downloads the image at imageURL and uploads it under
// kits/<kitID>/logo_<slot>.png, returning the storage URL.
func (s *ArchiveService) Archive(ctx context.Context, kitID string, slot int, imageURL string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to download logo image: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to download logo image: status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return "", fmt.Errorf("downloaded logo image is empty")
	}

	key := fmt.Sprintf("kits/%s/logo_%d.png", kitID, slot)
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), contentType); err != nil {
		return "", fmt.Errorf("failed to upload logo image: %w", err)
	}

	url := s.storage.GetURL(key)
	logger.CtxDebug(ctx, "Archived logo image: key=%s, size=%d", key, len(body))
	return url, nil
}
