package packages

import (
	"errors"
	"net/http"
	"strconv"

	"travelbook/internal/pkg/response"
	"travelbook/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/packages", h.List)
	rg.GET("/packages/:id", h.GetByID)
}

// RegisterAdminRoutes mounts the mutation endpoints (behind auth + admin role).
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/packages", h.Create)
	rg.PUT("/packages/:id", h.Update)
	rg.DELETE("/packages/:id", h.Delete)
	rg.GET("/packages/:id/form", h.GetForm)
	rg.POST("/packages/eligible-rooms", h.EligibleRooms)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.PackageFilters

	f.CountryID = queryInt64(c, "country_id")
	f.CityID = queryInt64(c, "city_id")
	f.CategoryID = queryInt64(c, "category_id")

	if featured := c.Query("featured"); featured != "" {
		v := featured == "true" || featured == "1"
		f.Featured = &v
	}

	f.Limit = repository.DefaultPageSize
	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= 100 {
			f.Limit = val
		}
	}
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	resp, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list packages")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load package")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"package": p})
}

func (h *Handler) GetForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	form, err := h.service.GetForm(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load package")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"form": form})
}

func (h *Handler) Create(c *gin.Context) {
	var form PackageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	form.ID = 0

	h.submit(c, form, http.StatusCreated)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var form PackageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	form.ID = id

	h.submit(c, form, http.StatusOK)
}

func (h *Handler) submit(c *gin.Context, form PackageForm, okStatus int) {
	result, err := h.service.Submit(c.Request.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
				"Package did not pass validation", result)
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
		case errors.Is(err, ErrBadReference):
			response.Error(c, http.StatusBadRequest, "BAD_REFERENCE",
				"A referenced country, city, category or tour does not exist")
		default:
			// server errors surface verbatim per the admin UI contract
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, okStatus, result)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete package")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) EligibleRooms(c *gin.Context) {
	var req EligibleRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.EligibleRooms(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to filter rooms")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid package ID")
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, name string) int64 {
	if v := c.Query(name); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	}
	return 0
}
