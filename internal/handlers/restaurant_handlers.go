package handlers

import (
	"net/http"
	"strconv"

	"foodcourt/internal/common"
	"foodcourt/internal/services"

	"github.com/labstack/echo/v4"
)

// RestaurantHandlers serves the restaurant catalog, menus, aggregated stats
// and image uploads.
type RestaurantHandlers struct {
	catalogService services.CatalogServiceInterface
	mediaService   services.MediaService
}

func NewRestaurantHandlers(catalogService services.CatalogServiceInterface, mediaService services.MediaService) *RestaurantHandlers {
	return &RestaurantHandlers{
		catalogService: catalogService,
		mediaService:   mediaService,
	}
}

// ListRestaurants handles GET /restaurants
func (h *RestaurantHandlers) ListRestaurants(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 20
	offset := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			limit = l
		}
	}
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if o, err := strconv.Atoi(offsetParam); err == nil && o >= 0 {
			offset = o
		}
	}

	restaurants, err := h.catalogService.ListRestaurants(ctx, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

// GetRestaurant handles GET /restaurants/:resId
func (h *RestaurantHandlers) GetRestaurant(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	restaurant, err := h.catalogService.GetRestaurant(ctx, resID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
	})
}

// Menu handles GET /restaurants/:resId/menu
func (h *RestaurantHandlers) Menu(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	menu, err := h.catalogService.Menu(ctx, resID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"menu": menu,
	})
}

// Stats handles GET /restaurants/:resId/stats
func (h *RestaurantHandlers) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	stats, err := h.catalogService.Stats(ctx, resID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": stats,
	})
}

// UploadRestaurantImage handles PUT /restaurants/:resId/image
func (h *RestaurantHandlers) UploadRestaurantImage(c echo.Context) error {
	ctx := c.Request().Context()

	resID, err := common.ParseID(c.Param("resId"), "resId")
	if err != nil {
		return common.RespondError(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return common.SendValidationError(c, "image", "image file is required")
	}
	src, err := file.Open()
	if err != nil {
		return common.SendClientError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	object, url, err := h.mediaService.UploadRestaurantImage(ctx, resID, file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Image uploaded",
		"object":  object,
		"url":     url,
	})
}

// UploadFoodImage handles PUT /foods/:foodId/image
func (h *RestaurantHandlers) UploadFoodImage(c echo.Context) error {
	ctx := c.Request().Context()

	foodID, err := common.ParseID(c.Param("foodId"), "foodId")
	if err != nil {
		return common.RespondError(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return common.SendValidationError(c, "image", "image file is required")
	}
	src, err := file.Open()
	if err != nil {
		return common.SendClientError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	object, url, err := h.mediaService.UploadFoodImage(ctx, foodID, file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Image uploaded",
		"object":  object,
		"url":     url,
	})
}
