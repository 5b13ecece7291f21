package cmd

import (
	"feed-importer/core/config"
	"feed-importer/core/loader"
	"feed-importer/core/logger"
	"feed-importer/core/middleware/auth"
	"feed-importer/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newApp builds the HTTP app: ray ids, request logging, the optional API key
// check, then every enabled feature.
func newApp(cfg *config.Config, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	if cfg.Server.RequiresAuth() {
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	} else {
		logg.Warn("No API key configured, the preview API is unauthenticated")
	}

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}
