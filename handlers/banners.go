package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

func (h *Handler) GetBanners(c echo.Context) error {
	var banners []models.Banner
	if err := h.store.FindAll(c.Request().Context(), database.CollectionBanners, &banners); err != nil {
		c.Logger().Errorf("list banners: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch banners"})
	}
	if banners == nil {
		banners = []models.Banner{}
	}
	return c.JSON(http.StatusOK, banners)
}

func (h *Handler) GetBanner(c echo.Context) error {
	id := c.Param("id")

	var banner models.Banner
	err := h.store.FindByID(c.Request().Context(), database.CollectionBanners, id, &banner)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Banner not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch banner"})
	}
	banner.ID = id

	return c.JSON(http.StatusOK, banner)
}

func (h *Handler) CreateBanner(c echo.Context) error {
	var banner models.Banner
	if err := c.Bind(&banner); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if banner.Header == "" || banner.Image == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Header and image are required"})
	}

	banner.ID = ""
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = banner.CreatedAt

	id, err := h.store.Push(c.Request().Context(), database.CollectionBanners, banner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create banner"})
	}
	banner.ID = id

	return c.JSON(http.StatusCreated, banner)
}

func (h *Handler) UpdateBanner(c echo.Context) error {
	var banner models.Banner
	if err := c.Bind(&banner); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	fields := map[string]interface{}{
		"header":        banner.Header,
		"secondaryText": banner.SecondaryText,
		"image":         banner.Image,
		"isActive":      banner.IsActive,
		"updatedAt":     time.Now(),
	}

	err := h.store.Update(c.Request().Context(), database.CollectionBanners, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Banner not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update banner"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Banner updated"})
}

// SetBannerActive toggles a single banner field without touching the rest of
// the document.
func (h *Handler) SetBannerActive(c echo.Context) error {
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	err := h.store.Update(c.Request().Context(), database.CollectionBanners, c.Param("id"), map[string]interface{}{
		"isActive":  req.IsActive,
		"updatedAt": time.Now(),
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Banner not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update banner"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"isActive": req.IsActive})
}

func (h *Handler) DeleteBanner(c echo.Context) error {
	err := h.store.Delete(c.Request().Context(), database.CollectionBanners, c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Banner not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete banner"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Banner deleted"})
}
