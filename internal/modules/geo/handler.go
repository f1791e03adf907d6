package geo

import (
	"net/http"
	"strconv"

	"travelbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the reference lists the admin form loads on mount.
// All lookups are read only, so it talks to the repository directly.
type Handler struct {
	repo GeoRepository
}

func NewHandler(repo GeoRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/countries", h.Countries)
	rg.GET("/cities", h.Cities)
	rg.GET("/destinations", h.Destinations)
	rg.GET("/package-categories", h.PackageCategories)
	rg.GET("/tour-categories", h.TourCategories)
}

func (h *Handler) Countries(c *gin.Context) {
	countries, err := h.repo.Countries(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list countries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"countries": countries})
}

func (h *Handler) Cities(c *gin.Context) {
	var countryID int64
	if v := c.Query("country_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid country_id")
			return
		}
		countryID = id
	}

	cities, err := h.repo.Cities(c.Request.Context(), countryID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cities")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cities": cities})
}

func (h *Handler) Destinations(c *gin.Context) {
	destinations, err := h.repo.Destinations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list destinations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destinations": destinations})
}

func (h *Handler) PackageCategories(c *gin.Context) {
	categories, err := h.repo.PackageCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) TourCategories(c *gin.Context) {
	categories, err := h.repo.TourCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}
