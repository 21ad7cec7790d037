package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/api/http/handler"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
)

func (r *Router) registerPaymentRoutes(
	api fiber.Router,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	payments := api.Group("/payments", authRequired)

	payments.Post("/", requirePerm(authorize.ResourcePayment, authorize.ActionCreate), ph.Record)
	payments.Get("/", requirePerm(authorize.ResourcePayment, authorize.ActionList), ph.List)
}
