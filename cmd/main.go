// Package main is the entry point for the flashe storefront service.
//
// @title           Flashe Storefront API
// @version         1.0.0
// @description     Catalog, pricing and WhatsApp order preparation for the flash drive storefront.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/flashe-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.basic  BasicAuth
//
// @tag.name        Storefront
// @tag.description Catalog, quotes and orders
//
// @tag.name        Admin
// @tag.description Catalog publishing and the request journal
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/flashe-service/config"
	_ "github.com/guttosm/flashe-service/docs" // swagger docs
	"github.com/guttosm/flashe-service/internal/app"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Fatal().Err(err).Msg("Failed to read .env")
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.InitializeApp(ctx, cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithRequestTimeout(cfg.Server.RequestTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
