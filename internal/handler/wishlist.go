package handler

import (
	"errors"
	"net/http"

	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/middleware"
	"lyra-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.wishlistService.List(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *WishlistHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.WishlistRequest
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	err := h.wishlistService.Add(ctx, middleware.UserID(c), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInWishlist):
			return echo.NewHTTPError(http.StatusConflict, "product already in wishlist")
		case errors.Is(err, service.ErrProductNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]bool{"success": true})
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	err := h.wishlistService.Remove(ctx, middleware.UserID(c), c.Param("productId"))
	if err != nil {
		if errors.Is(err, service.ErrWishlistEntryGone) {
			return echo.NewHTTPError(http.StatusNotFound, "product not in wishlist")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
