package handler

import (
	"errors"
	"net/http"

	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/middleware"
	"lyra-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.CreatePaymentIntent(ctx, middleware.UserID(c), req.Items, req.ShippingAddress)
	if err != nil {
		var unknown *service.UnknownProductError
		switch {
		case errors.Is(err, service.ErrInvalidCart):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &unknown):
			return echo.NewHTTPError(http.StatusBadRequest, unknown.Error())
		case errors.Is(err, service.ErrAmountTooLow):
			return echo.NewHTTPError(http.StatusBadRequest, "order total must be at least $0.50")
		case errors.Is(err, service.ErrGatewayUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "payment gateway unavailable, please retry")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, result)
}
