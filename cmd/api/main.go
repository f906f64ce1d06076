package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"charty-backend/internal/client"
	"charty-backend/internal/config"
	"charty-backend/internal/currency"
	"charty-backend/internal/gateway"
	"charty-backend/internal/logging"
	"charty-backend/internal/server"
	"charty-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	// Email: resolved once into one provider or none.
	var mailer client.Mailer
	if settings, ok := cfg.Email.ResolveSMTP(); ok {
		m, err := client.NewSMTPMailer(settings)
		if err != nil {
			logger.Fatal().Err(err).Msg("smtp mailer setup failed")
		}
		mailer = m
		logger.Info().Str("provider", cfg.Email.Provider).Msg("email configured")
	} else {
		logger.Warn().Str("provider", cfg.Email.Provider).Msg("email env vars not fully set, messages will be logged only")
	}

	var sms client.SMSSender
	if cfg.Twilio.Configured() {
		sms = client.NewTwilioSender(&cfg.Twilio)
		logger.Info().Msg("sms configured")
	} else {
		logger.Warn().Msg("twilio env vars not fully set, sms will be skipped")
	}

	var chatModel client.ChatModel
	if cfg.AIBot.Key() != "" {
		chatModel = client.NewGeminiClient(&cfg.AIBot, "")
		logger.Info().Str("model", cfg.AIBot.Model).Msg("ai bot configured")
	} else {
		logger.Warn().Msg("gemini api key not configured, ai bot will use fallback responses")
	}

	var gw gateway.Gateway
	if cfg.Zenopay.Configured() {
		gw = gateway.NewLive(client.NewZenopayClient(&cfg.Zenopay), cfg.Zenopay.WebhookURL, logger)
	} else {
		gw = gateway.NewDemo(nil, logger)
	}
	logger.Info().Str("mode", gw.Mode()).Msg("payment gateway ready")

	converter := currency.NewConverter(cfg.Currency.USDToTZS)

	contactService := service.NewContactService(mailer, sms, cfg.Org, logger)
	donationService := service.NewDonationService(mailer, cfg.Org, nil, logger)
	paymentService := service.NewPaymentService(gw, converter, nil, nil, logger)
	chatService := service.NewChatService(chatModel, logger)

	srv := server.NewServer(cfg, logger, contactService, donationService, paymentService, chatService, converter)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	logger.Info().Str("addr", serverAddr).Msg("starting http server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info().Msg("signal received, shutting down")

	if err := srv.Shutdown(); err != nil {
		logger.Fatal().Err(err).Msg("http server shutdown error")
	}
}
