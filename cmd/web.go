// Package cmd provides command implementations for the castpanel application.
// It includes the StartWeb function which initializes and starts the HTTP
// server with the locale service and handles server configuration.
package cmd

import (
	"os"

	httpserver "github.com/vcfranco/castpanel/internal/adapters/http"
	"github.com/vcfranco/castpanel/internal/application"
	"github.com/vcfranco/castpanel/internal/config"
	"github.com/vcfranco/castpanel/internal/i18n"
	"github.com/vcfranco/castpanel/internal/utils"
)

// StartWeb starts the HTTP server using an already-initialized locale registry.
func StartWeb(registry *i18n.Registry, cfg config.AppConfig) {
	localeService := application.NewLocaleService(registry)
	server := httpserver.New(localeService, registry)
	port := os.Getenv("CASTPANEL_HTTP_PORT")
	if port == "" {
		port = cfg.HTTPPort
	}
	if port == "" {
		port = "8080"
	}
	utils.Logger.Info("HTTP UI starting", "port", port)
	if err := server.Run(":" + port); err != nil {
		utils.Logger.Fatal("HTTP UI terminated", "err", err)
	}
}
