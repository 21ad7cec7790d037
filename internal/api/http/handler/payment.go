package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/payment"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
)

type PaymentHandler struct {
	svc  payment.Service
	auth authorize.IAuthorization
}

func NewPaymentHandler(svc payment.Service, auth authorize.IAuthorization) *PaymentHandler {
	return &PaymentHandler{svc: svc, auth: auth}
}

func mapPaymentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentsDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, payment.ErrInvalidAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, payment.ErrNotRequestOwner):
		return forbidden(c)
	case errors.Is(err, fulfillment.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /payments
// Records a payment against a request. Amounts are in millimes.
func (h *PaymentHandler) Record(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		RequestID   string  `json:"request_id"`
		Amount      int64   `json:"amount"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RequestID == "" {
		return badRequest(c, "request_id is required")
	}
	if body.Amount <= 0 {
		return badRequest(c, "amount must be positive")
	}

	requestID, err := uuid.Parse(body.RequestID)
	if err != nil {
		return badRequest(c, "invalid request_id")
	}

	p, err := h.svc.Record(c.Context(), payment.RecordRequest{
		RequestID:   requestID,
		PayerID:     userID,
		Amount:      body.Amount,
		Description: body.Description,
	})
	if err != nil {
		return mapPaymentError(c, err)
	}

	return created(c, p)
}

// GET /payments
func (h *PaymentHandler) List(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	pays, err := h.svc.ListByPayer(c.Context(), userID, q.Page, q.PerPage)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, pays)
}

// GET /requests/:id/payments
func (h *PaymentHandler) ListByRequest(c fiber.Ctx) error {
	viewer, found := viewerFromClaims(c, h.auth)
	if !found {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	pays, err := h.svc.ListByRequest(c.Context(), viewer, requestID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	return ok(c, pays)
}
