package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/api/http/handler"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
)

func (r *Router) registerRequestRoutes(
	api fiber.Router,
	rh *handler.RequestHandler,
	fh *handler.FileHandler,
	ph *handler.PaymentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	reqs := api.Group("/requests", authRequired)

	reqs.Get("/", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionList), rh.List)
	reqs.Post("/", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionCreate), rh.Create)

	one := reqs.Group("/:id")
	one.Get("/", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionRead), rh.GetByID)

	// Provider-side lifecycle
	one.Patch("/fulfill", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionFulfill), rh.Fulfill)
	one.Patch("/ready", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionFulfill), rh.MarkReady)
	one.Patch("/complete", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionComplete), rh.Complete)

	// Patient-side lifecycle
	one.Patch("/accept-partial", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionUpdate), rh.AcceptPartial)
	one.Patch("/cancel", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionUpdate), rh.Cancel)
	one.Patch("/reassign", requirePerm(authorize.ResourceMedicalRequest, authorize.ActionReassign), rh.Reassign)

	// Result documents
	one.Post("/result-file", requirePerm(authorize.ResourceResultFile, authorize.ActionCreate), fh.UploadResultFile)
	one.Get("/result-file", requirePerm(authorize.ResourceResultFile, authorize.ActionRead), fh.DownloadResultFile)

	// Payments recorded against a request
	one.Get("/payments", requirePerm(authorize.ResourcePayment, authorize.ActionList), ph.ListByRequest)
}
