package handler

import (
	"errors"
	"io"
	"net/http"

	"lyra-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

// SignatureHeader is the gateway's signature header on webhook deliveries.
const SignatureHeader = "Lyra-Signature"

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandlePaymentWebhook answers 2xx only when the delivery is fully handled
// (or is a recognized no-op); any other status tells the gateway to retry.
// Signature failures are answered 400 and never retried into success.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}

	result, err := h.webhookService.HandlePaymentEvent(ctx, body, c.Request().Header.Get(SignatureHeader))
	if err != nil {
		var missing *service.MissingLineProductError
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			return echo.NewHTTPError(http.StatusBadRequest, "invalid signature")
		case errors.As(err, &missing):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, missing.Error())
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, result)
}
