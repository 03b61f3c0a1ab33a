package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

func (h *Handler) GetOrders(c echo.Context) error {
	var orders []models.Order
	if err := h.store.FindAll(c.Request().Context(), database.CollectionOrders, &orders); err != nil {
		c.Logger().Errorf("list orders: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	id := c.Param("id")

	var order models.Order
	err := h.store.FindByID(c.Request().Context(), database.CollectionOrders, id, &order)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}
	order.ID = id

	return c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrderStatus(c echo.Context) error {
	var order models.Order
	err := h.store.FindByID(c.Request().Context(), database.CollectionOrders, c.Param("id"), &order)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": string(order.Status)})
}

func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if !req.Status.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order status"})
	}

	err := h.store.Update(c.Request().Context(), database.CollectionOrders, c.Param("id"), map[string]interface{}{
		"status":    req.Status,
		"updatedAt": time.Now().UnixMilli(),
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update order"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": string(req.Status)})
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	err := h.store.Delete(c.Request().Context(), database.CollectionOrders, c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete order"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Order deleted"})
}
