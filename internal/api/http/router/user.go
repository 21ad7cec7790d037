package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired fiber.Handler) {
	me := api.Group("/users/me", authRequired)
	me.Get("/", h.GetMe)
	me.Patch("/", h.UpdateMe)
	me.Get("/roles", h.GetMyRoles)
}
