package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the public artist/category/service listings and the
// admin mutations behind them. Read models already carry json tags, so they
// go out as-is.
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List artists
// @Tags catalog
// @Produce json
// @Success 200 {array} readmodel.ArtistRM
// @Router /artists [get]
func (h *CatalogHandler) ListArtists(c *gin.Context) {
	artists, err := h.catalogUseCase.ListArtists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, artists)
}

// @Summary Get artist
// @Tags catalog
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} readmodel.ArtistRM
// @Failure 404 {object} map[string]string
// @Router /artists/{id} [get]
func (h *CatalogHandler) GetArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artist ID format",
		})
		return
	}

	artist, err := h.catalogUseCase.GetArtist(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrArtistNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Artist not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, artist)
}

// @Summary Create artist
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateArtistRequest true "Artist"
// @Success 201 {object} readmodel.ArtistRM
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /artists [post]
func (h *CatalogHandler) CreateArtist(c *gin.Context) {
	var req reqdto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	artist, err := h.catalogUseCase.CreateArtist(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrArtistEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Artist email already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, artist)
}

// @Summary Update artist
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Param request body reqdto.UpdateArtistRequest true "Artist"
// @Success 200 {object} readmodel.ArtistRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /artists/{id} [put]
func (h *CatalogHandler) UpdateArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artist ID format",
		})
		return
	}

	var req reqdto.UpdateArtistRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	artist, err := h.catalogUseCase.UpdateArtist(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrArtistNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Artist not found",
			})
		case errors.Is(err, usecase.ErrArtistEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Artist email already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, artist)
}

// @Summary Delete artist
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /artists/{id} [delete]
func (h *CatalogHandler) DeleteArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid artist ID format",
		})
		return
	}

	if err := h.catalogUseCase.DeleteArtist(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrArtistNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Artist not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} readmodel.CategoryRM
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Create category
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} readmodel.CategoryRM
// @Failure 409 {object} map[string]string
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Category already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary Delete category
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	if err := h.catalogUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Category not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List services in a category
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {array} readmodel.ServiceRM
// @Router /categories/{id}/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	services, err := h.catalogUseCase.ListServices(c.Request.Context(), categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, services)
}

// @Summary Create service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} readmodel.ServiceRM
// @Failure 404 {object} map[string]string
// @Router /categories/{id}/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	var req reqdto.CreateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	service, err := h.catalogUseCase.CreateService(c.Request.Context(), categoryID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Category not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, service)
}

// @Summary Update service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Service"
// @Success 200 {object} readmodel.ServiceRM
// @Failure 404 {object} map[string]string
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var req reqdto.UpdateServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	service, err := h.catalogUseCase.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// @Summary Delete service
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	if err := h.catalogUseCase.DeleteService(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
