package genimage

import (
	"errors"
	"net/http"

	"travelbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/packages/generate-image", h.Generate)
}

type generateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *Handler) Generate(c *gin.Context) {
	if !h.service.Enabled() {
		response.Error(c, http.StatusServiceUnavailable, "GENERATION_DISABLED", "Image generation is not configured")
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Prompt is required")
		return
	}

	u, err := h.service.Generate(c.Request.Context(), c.GetInt64("user_id"), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadPrompt):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Prompt is required")
		case errors.Is(err, ErrNoImage):
			response.Error(c, http.StatusBadGateway, "GENERATION_FAILED", "The model returned no image")
		default:
			response.Error(c, http.StatusBadGateway, "GENERATION_FAILED", "Image generation failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":  u.ID,
		"url": u.FileURL,
	})
}
