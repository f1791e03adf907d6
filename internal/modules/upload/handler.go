package upload

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

// RegisterRoutes mounts the upload endpoints; the group must already carry
// the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-image", h.UploadImage)
	rg.GET("/uploads/:id", h.GetByID)
	rg.DELETE("/uploads/:id", h.Delete)
}

func (h *Handler) UploadImage(c *gin.Context) {
	userID := c.GetInt64("user_id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// Older admin builds post the field as "file".
		fileHeader, err = c.FormFile("file")
		if err != nil {
			response.Error(c, http.StatusBadRequest, "NO_FILE", "No image file provided")
			return
		}
	}

	u, err := h.service.UploadImage(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrNotAnImage):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":  u.ID,
		"url": u.FileURL,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load upload")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"upload": u})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Upload not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete upload")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
