package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"nextperm/internal/domain/permutation"
	"nextperm/internal/infrastructure/http/v1/dto"
)

// PermutationService computes the next permutation of a raw input string.
type PermutationService interface {
	Next(ctx context.Context, raw string) (permutation.Result, error)
}

// PermutationHandler serves next-permutation requests.
type PermutationHandler struct {
	*BaseHandler
	service PermutationService
}

// NewPermutationHandler creates a new permutation handler.
func NewPermutationHandler(base *BaseHandler, service PermutationService) *PermutationHandler {
	return &PermutationHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers both request forms on rg.
// A GET without the path parameter is answered as a missing input, not a 404.
func (h *PermutationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetMissing)
	rg.GET("/", h.GetMissing)
	rg.GET("/:input_num", h.GetByPath)
	rg.POST("", h.PostJSON)
}

// GetMissing handles the path form with no input_num.
// GET /api/v1/next-permutation
func (h *PermutationHandler) GetMissing(c *gin.Context) {
	h.respond(c, "")
}

// GetByPath handles the path parameter form.
// GET /api/v1/next-permutation/:input_num
func (h *PermutationHandler) GetByPath(c *gin.Context) {
	h.respond(c, c.Param("input_num"))
}

// PostJSON handles the JSON body form.
// POST /api/v1/next-permutation
func (h *PermutationHandler) PostJSON(c *gin.Context) {
	var req dto.NextPermutationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.respond(c, string(req.InputNum))
}

func (h *PermutationHandler) respond(c *gin.Context, raw string) {
	result, err := h.service.Next(c.Request.Context(), raw)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromResult(result))
}
