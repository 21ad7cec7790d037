package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/api/http/handler"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
)

func (r *Router) registerProviderRoutes(
	api fiber.Router,
	ph *handler.ProviderHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	providers := api.Group("/providers", authRequired)

	providers.Get("/", requirePerm(authorize.ResourceProvider, authorize.ActionList), ph.List)
	providers.Get("/:id", requirePerm(authorize.ResourceProvider, authorize.ActionRead), ph.GetByID)
}
