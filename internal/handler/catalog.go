package handler

import (
	"errors"
	"net/http"

	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var query dto.ProductQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	page, err := h.catalogService.ListProducts(ctx, &query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) GetProductBySlug(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}
