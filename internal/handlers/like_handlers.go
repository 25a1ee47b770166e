package handlers

import (
	"net/http"

	"foodcourt/internal/common"
	"foodcourt/internal/services"

	"github.com/labstack/echo/v4"
)

// LikeHandlers handles HTTP requests for restaurant likes
type LikeHandlers struct {
	likeService services.LikeServiceInterface
}

func NewLikeHandlers(likeService services.LikeServiceInterface) *LikeHandlers {
	return &LikeHandlers{likeService: likeService}
}

// LikeRestaurant handles POST /likes
func (h *LikeHandlers) LikeRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		UserID       int64 `json:"userId"`
		RestaurantID int64 `json:"restaurantId"`
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

	result, err := h.likeService.LikeRestaurant(ctx, req.UserID, req.RestaurantID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Like recorded",
		"like":    result,
	})
}

// UnlikeRestaurant handles DELETE /likes/:resId
func (h *LikeHandlers) UnlikeRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	var req struct {
		UserID int64 `json:"userId"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.UserID <= 0 {
		return common.SendValidationError(c, "userId", "userId must be a positive integer")
	}

	deleted, err := h.likeService.UnlikeRestaurant(ctx, req.UserID, resID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "Unlike successful",
		"deletedCount": deleted,
	})
}

// LikesByRestaurant handles GET /likes/restaurant/:resId
func (h *LikeHandlers) LikesByRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	likes, err := h.likeService.LikesByRestaurant(ctx, resID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"likes": likes,
		"count": len(likes),
	})
}

// LikesByUser handles GET /likes/user/:userId
func (h *LikeHandlers) LikesByUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := common.ParseID(c.Param("userId"), "userId")
	if err != nil {
		return common.RespondError(c, err)
	}

	likes, err := h.likeService.LikesByUser(ctx, userID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"likes": likes,
		"count": len(likes),
	})
}
