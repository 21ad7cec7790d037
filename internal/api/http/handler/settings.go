package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/service/settings"
)

type SettingsHandler struct {
	svc settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GET /admin/settings/payments
func (h *SettingsHandler) GetPayments(c fiber.Ctx) error {
	enabled, err := h.svc.PaymentsEnabled(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"enabled": enabled})
}

// PUT /admin/settings/payments
func (h *SettingsHandler) SetPayments(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Enabled == nil {
		return badRequest(c, "enabled is required")
	}

	if err := h.svc.SetPaymentsEnabled(c.Context(), *body.Enabled, &userID); err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, fiber.Map{"enabled": *body.Enabled})
}
