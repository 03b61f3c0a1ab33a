package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/mailer"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

// GetSummary returns the dashboard headline numbers: user count, order count
// and total revenue across all orders.
func (h *Handler) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	userCount, err := h.store.Count(ctx, database.CollectionUsers)
	if err != nil {
		c.Logger().Errorf("count users: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch admin summary"})
	}

	var orders []models.Order
	if err := h.store.FindAll(ctx, database.CollectionOrders, &orders); err != nil {
		c.Logger().Errorf("list orders: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch admin summary"})
	}

	var revenue int64
	for _, order := range orders {
		revenue += order.Amount
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users":   userCount,
		"orders":  len(orders),
		"revenue": revenue,
	})
}

func (h *Handler) GetDeliveryFees(c echo.Context) error {
	var fees models.DeliveryFees
	err := h.store.FindByID(c.Request().Context(), database.CollectionSettings, database.DeliveryFeesID, &fees)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch delivery fees"})
	}
	// Unset fees read as zeroes.
	return c.JSON(http.StatusOK, fees)
}

func (h *Handler) SetDeliveryFees(c echo.Context) error {
	var req struct {
		Lagos  *int64 `json:"lagos"`
		Others *int64 `json:"others"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Lagos == nil || req.Others == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Both fees required"})
	}
	if *req.Lagos < 0 || *req.Others < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Fees must not be negative"})
	}

	fees := models.DeliveryFees{Lagos: *req.Lagos, Others: *req.Others}
	if err := h.store.Set(c.Request().Context(), database.CollectionSettings, database.DeliveryFeesID, fees); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to set delivery fees"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) GetSubscribers(c echo.Context) error {
	var subs []models.Subscriber
	if err := h.store.FindAll(c.Request().Context(), database.CollectionSubscribers, &subs); err != nil {
		c.Logger().Errorf("list subscribers: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch subscribers"})
	}

	emails := make([]string, 0, len(subs))
	for _, s := range subs {
		if s.Email != "" {
			emails = append(emails, s.Email)
		}
	}

	return c.JSON(http.StatusOK, map[string][]string{"subscribers": emails})
}

// SendNewsletter delivers the given newsletter to every subscriber.
func (h *Handler) SendNewsletter(c echo.Context) error {
	var req struct {
		Subject string `json:"subject"`
		HTML    string `json:"html"`
		Plain   string `json:"plain"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Subject == "" || req.HTML == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "subject and html required"})
	}
	if h.mailer == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "SMTP not configured"})
	}

	ctx := c.Request().Context()

	var subs []models.Subscriber
	if err := h.store.FindAll(ctx, database.CollectionSubscribers, &subs); err != nil {
		c.Logger().Errorf("list subscribers: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch subscribers"})
	}

	emails := make([]string, 0, len(subs))
	for _, s := range subs {
		if s.Email != "" {
			emails = append(emails, s.Email)
		}
	}
	if len(emails) == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{"ok": true, "note": "no-subscribers"})
	}

	results, err := h.mailer.Send(ctx, mailer.Newsletter{
		Subject: req.Subject,
		HTML:    req.HTML,
		Plain:   req.Plain,
	}, emails)
	if err != nil {
		c.Logger().Errorf("send newsletter: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send newsletter"})
	}

	sent := 0
	for _, r := range results {
		if r.OK {
			sent++
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":      true,
		"sent":    sent,
		"failed":  len(results) - sent,
		"results": results,
	})
}
