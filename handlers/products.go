package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

func (h *Handler) GetProducts(c echo.Context) error {
	var products []models.Product
	if err := h.store.FindAll(c.Request().Context(), database.CollectionProducts, &products); err != nil {
		c.Logger().Errorf("list products: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	var product models.Product
	err := h.store.FindByID(c.Request().Context(), database.CollectionProducts, id, &product)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}
	product.ID = id

	return c.JSON(http.StatusOK, product)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if product.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product name is required"})
	}
	if product.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price must not be negative"})
	}

	product.ID = ""
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	id, err := h.store.Push(c.Request().Context(), database.CollectionProducts, product)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}
	product.ID = id

	return c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if product.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price must not be negative"})
	}

	fields := map[string]interface{}{
		"name":          product.Name,
		"description":   product.Description,
		"category":      product.Category,
		"price":         product.Price,
		"originalPrice": product.OriginalPrice,
		"productImages": product.ProductImages,
		"stock":         product.Stock,
		"sizes":         product.Sizes,
		"colors":        product.Colors,
		"updatedAt":     time.Now(),
	}

	err := h.store.Update(c.Request().Context(), database.CollectionProducts, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	err := h.store.Delete(c.Request().Context(), database.CollectionProducts, c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}
