package server

import (
	"log/slog"

	"lyra-storefront/internal/handler"
	"lyra-storefront/internal/middleware"
	"lyra-storefront/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	jwtSecret       string
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
	orderHandler    *handler.OrderHandler
	wishlistHandler *handler.WishlistHandler
	adminHandler    *handler.AdminHandler
}

func NewServer(
	jwtSecret string,
	catalogService service.CatalogService,
	checkoutService service.CheckoutService,
	webhookService service.WebhookService,
	orderService service.OrderService,
	wishlistService service.WishlistService,
	inventoryService service.InventoryService,
) *Server {
	e := echo.New()

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"error", v.Error,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		jwtSecret:       jwtSecret,
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		webhookHandler:  handler.NewWebhookHandler(webhookService),
		orderHandler:    handler.NewOrderHandler(orderService),
		wishlistHandler: handler.NewWishlistHandler(wishlistService),
		adminHandler:    handler.NewAdminHandler(inventoryService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:slug", s.catalogHandler.GetProductBySlug)

	// -------- checkout --------
	checkout := api.Group("/checkout", middleware.OptionalAuth(s.jwtSecret))
	checkout.POST("/payment-intent", s.checkoutHandler.CreatePaymentIntent)

	// -------- gateway webhooks --------
	api.POST("/webhooks/payment", s.webhookHandler.HandlePaymentWebhook)

	// -------- account --------
	account := api.Group("", middleware.Auth(s.jwtSecret))
	account.GET("/orders", s.orderHandler.ListOrders)
	account.GET("/orders/:id", s.orderHandler.GetOrderDetails)
	account.GET("/wishlist", s.wishlistHandler.List)
	account.POST("/wishlist", s.wishlistHandler.Add)
	account.DELETE("/wishlist/:productId", s.wishlistHandler.Remove)

	// -------- back-office --------
	admin := api.Group("/admin", middleware.Auth(s.jwtSecret))
	admin.PATCH("/orders/:id/status", s.orderHandler.UpdateOrderStatus)
	admin.GET("/inventory", s.adminHandler.ListInventory)
	admin.PATCH("/inventory/:id", s.adminHandler.UpdateStock)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
