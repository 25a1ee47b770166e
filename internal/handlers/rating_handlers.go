package handlers

import (
	"net/http"

	"foodcourt/internal/common"
	"foodcourt/internal/services"

	"github.com/labstack/echo/v4"
)

// RatingHandlers handles HTTP requests for restaurant ratings
type RatingHandlers struct {
	ratingService services.RatingServiceInterface
}

func NewRatingHandlers(ratingService services.RatingServiceInterface) *RatingHandlers {
	return &RatingHandlers{ratingService: ratingService}
}

// RateRestaurant handles POST /ratings
func (h *RatingHandlers) RateRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		UserID       int64 `json:"userId"`
		RestaurantID int64 `json:"restaurantId"`
		Amount       int   `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.UserID <= 0 {
		return common.SendValidationError(c, "userId", "userId must be a positive integer")
	}
	if req.RestaurantID <= 0 {
		return common.SendValidationError(c, "restaurantId", "restaurantId must be a positive integer")
	}

	result, err := h.ratingService.RateRestaurant(ctx, req.UserID, req.RestaurantID, req.Amount)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Rating saved",
		"rating":  result,
	})
}

// RatingsByRestaurant handles GET /ratings/restaurant/:resId
func (h *RatingHandlers) RatingsByRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	ratings, err := h.ratingService.RatingsByRestaurant(ctx, resID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ratings": ratings,
		"count":   len(ratings),
	})
}

// RatingsByUser handles GET /ratings/user/:userId
func (h *RatingHandlers) RatingsByUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := common.ParseID(c.Param("userId"), "userId")
	if err != nil {
		return common.RespondError(c, err)
	}

	ratings, err := h.ratingService.RatingsByUser(ctx, userID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ratings": ratings,
		"count":   len(ratings),
	})
}
