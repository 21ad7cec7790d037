package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Bemyself19/sehatynet_backend/config"
	"github.com/Bemyself19/sehatynet_backend/internal/api/http/router"
	"github.com/Bemyself19/sehatynet_backend/internal/app"
)

// Start assembles the full application graph and blocks until shutdown.
func Start(cfg *config.Config, shutdownTimeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces server construction and its OnStart hook.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(shutdownTimeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
