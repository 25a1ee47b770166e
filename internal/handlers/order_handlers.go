package handlers

import (
	"net/http"

	"foodcourt/internal/common"
	"foodcourt/internal/models"
	"foodcourt/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderServiceInterface
}

func NewOrderHandlers(orderService services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// PlaceOrder handles POST /orders
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		UserID int64              `json:"userId"`
		Items  []models.OrderLine `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.UserID <= 0 {
		return common.SendValidationError(c, "userId", "userId must be a positive integer")
	}
	if len(req.Items) == 0 {
		return common.SendValidationError(c, "items", "items is required and cannot be empty")
	}

	order, err := h.orderService.PlaceOrder(ctx, req.UserID, req.Items)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// OrdersByUser handles GET /orders/user/:userId
func (h *OrderHandlers) OrdersByUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := common.ParseID(c.Param("userId"), "userId")
	if err != nil {
		return common.RespondError(c, err)
	}

	orders, err := h.orderService.OrdersByUser(ctx, userID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}
