package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	inventoryService service.InventoryService
}

func NewAdminHandler(inventoryService service.InventoryService) *AdminHandler {
	return &AdminHandler{
		inventoryService: inventoryService,
	}
}

func (h *AdminHandler) ListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.inventoryService.ListInventory(ctx, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) UpdateStock(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid inventory id")
	}

	var req dto.UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	err = h.inventoryService.UpdateStock(ctx, uint(id), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNegativeStockLevel):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProductNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "inventory record not found")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
