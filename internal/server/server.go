package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"charty-backend/internal/config"
	"charty-backend/internal/currency"
	"charty-backend/internal/dto"
	"charty-backend/internal/handler"
	"charty-backend/internal/service"
)

type Server struct {
	echo            *echo.Echo
	contactHandler  *handler.ContactHandler
	donationHandler *handler.DonationHandler
	paymentHandler  *handler.PaymentHandler
	webhookHandler  *handler.WebhookHandler
	chatHandler     *handler.ChatHandler
	contentHandler  *handler.ContentHandler
}

func NewServer(
	cfg *config.Config,
	logger zerolog.Logger,
	contactService service.ContactService,
	donationService service.DonationService,
	paymentService service.PaymentService,
	chatService service.ChatService,
	converter *currency.Converter,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins(),
	}))

	s := &Server{
		echo:            e,
		contactHandler:  handler.NewContactHandler(contactService, logger),
		donationHandler: handler.NewDonationHandler(donationService, logger),
		paymentHandler:  handler.NewPaymentHandler(paymentService, converter, logger),
		webhookHandler:  handler.NewWebhookHandler(logger),
		chatHandler:     handler.NewChatHandler(chatService, logger),
		contentHandler:  handler.NewContentHandler(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", TS: time.Now().UnixMilli()})
	})

	api.POST("/contact", s.contactHandler.Submit)
	api.POST("/donations", s.donationHandler.Process)
	api.POST("/ai-bot", s.chatHandler.Reply)

	// -------- public content --------
	api.GET("/leaders", s.contentHandler.Leaders)
	api.GET("/gallery", s.contentHandler.Gallery)
	api.GET("/services", s.contentHandler.Services)
	api.GET("/about", s.contentHandler.About)
	api.GET("/impact-stats", s.contentHandler.ImpactStats)

	// -------- payments --------
	payments := api.Group("/payments")
	payments.POST("/mobile_money_tanzania", s.paymentHandler.MobileMoney)
	payments.POST("/card", s.paymentHandler.Card)
	payments.POST("/bank_transfer", s.paymentHandler.BankTransfer)
	payments.GET("/order-status", s.paymentHandler.OrderStatus)
	payments.GET("/order-status/:orderId", s.paymentHandler.OrderStatus)
	payments.GET("/methods", s.paymentHandler.Methods)
	payments.GET("/currency/rate", s.paymentHandler.CurrencyRate)
	payments.POST("/currency/convert", s.paymentHandler.CurrencyConvert)

	// -------- gateway webhooks --------
	webhooks := api.Group("/webhooks")
	webhooks.POST("/zenopay", s.webhookHandler.Zenopay)
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
