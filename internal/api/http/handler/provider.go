package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
)

type ProviderHandler struct {
	svc provider.Service
}

func NewProviderHandler(svc provider.Service) *ProviderHandler {
	return &ProviderHandler{svc: svc}
}

func mapProviderError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, provider.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, provider.ErrNotAProvider):
		return notFound(c, "provider not found")
	case errors.Is(err, provider.ErrUnknownRequestType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /providers
func (h *ProviderHandler) List(c fiber.Ctx) error {
	var q struct {
		Type    string `query:"type"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := provider.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Type != "" {
		req.ProviderType = &q.Type
	}

	providers, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapProviderError(c, err)
	}

	return ok(c, providers)
}

// GET /providers/:id
func (h *ProviderHandler) GetByID(c fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid provider id")
	}

	p, err := h.svc.GetByID(c.Context(), providerID)
	if err != nil {
		return mapProviderError(c, err)
	}

	return ok(c, p)
}
