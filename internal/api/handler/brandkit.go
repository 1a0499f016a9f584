package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timmy/brandkit/internal/domain"
	"github.com/timmy/brandkit/internal/service"
)

// BrandKitHandler handles brand kit generation endpoints.
type BrandKitHandler struct {
	pipeline *service.PipelineService
}

// NewBrandKitHandler creates a new brand kit handler.
// Parameters:
//   - pipeline: pipeline service instance.
// Returns:
//   - *BrandKitHandler: initialized handler.
func NewBrandKitHandler(pipeline *service.PipelineService) *BrandKitHandler {
	return &BrandKitHandler{
		pipeline: pipeline,
	}
}

// Generate handles POST /api/v1/brandkit.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *BrandKitHandler) Generate(c *gin.Context) {
	var input domain.BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	kit, err := h.pipeline.GenerateKit(c.Request.Context(), &input)
	if err != nil {
		c.JSON(statusForPipelineError(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, kit)
}

// statusForPipelineError maps pipeline error kinds to HTTP status codes.
// Validation problems are the caller's fault; upstream model and index
// failures surface as bad gateway.
func statusForPipelineError(err error) int {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	var eErr *service.EmbeddingError
	var rErr *service.RetrievalError
	var gErr *service.GenerationError
	if errors.As(err, &eErr) || errors.As(err, &rErr) || errors.As(err, &gErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
