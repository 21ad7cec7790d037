package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/service/notification"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, notification.ErrUnauthorized):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		UnreadOnly bool `query:"unread_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	notifs, err := h.svc.List(c.Context(), claims.UserID, q.UnreadOnly, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, notifs)
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.MarkRead(c.Context(), notifID, claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// GET /users/me/notification-prefs
func (h *NotificationHandler) GetPrefs(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	prefs, err := h.svc.GetPrefs(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, prefs)
}

// PUT /users/me/notification-prefs
func (h *NotificationHandler) UpdatePrefs(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var body struct {
		RequestSMS   bool `json:"request_sms"`
		RequestEmail bool `json:"request_email"`
		RequestPush  bool `json:"request_push"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	prefs, err := h.svc.UpsertPrefs(c.Context(), claims.UserID, notification.UpsertPrefsRequest{
		RequestSMS:   body.RequestSMS,
		RequestEmail: body.RequestEmail,
		RequestPush:  body.RequestPush,
	})
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, prefs)
}
