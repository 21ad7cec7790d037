package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/api/http/handler"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
)

func (r *Router) registerSettingsRoutes(
	api fiber.Router,
	sh *handler.SettingsHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	admin := api.Group("/admin/settings", authRequired)

	admin.Get("/payments", requirePerm(authorize.ResourcePlatformSetting, authorize.ActionRead), sh.GetPayments)
	admin.Put("/payments", requirePerm(authorize.ResourcePlatformSetting, authorize.ActionUpdate), sh.SetPayments)
}
