package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/timmy/brandkit/internal/repository"
)

// RecordHandler handles brand record and index bookkeeping endpoints.
type RecordHandler struct {
	brandRepo *repository.BrandRepository
	jobRepo   *repository.JobRepository
}

// NewRecordHandler creates a new record handler.
// Parameters:
//   - brandRepo: brand record repository.
//   - jobRepo: ingest job repository.
// Returns:
//   - *RecordHandler: initialized handler.
func NewRecordHandler(brandRepo *repository.BrandRepository, jobRepo *repository.JobRepository) *RecordHandler {
	return &RecordHandler{
		brandRepo: brandRepo,
		jobRepo:   jobRepo,
	}
}

// GetRecord handles GET /api/v1/records/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id := c.Param("id")
	record, err := h.brandRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load record: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetStats handles GET /api/v1/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.brandRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count records: " + err.Error(),
		})
		return
	}

	industries, err := h.brandRepo.ListIndustries(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list industries: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_records": count,
		"industries":    industries,
	})
}

// GetJob handles GET /api/v1/jobs/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	job, err := h.jobRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Job not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load job: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}
