package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/service/user"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetMe(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Specialty *string `json:"specialty"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.UpdateMe(c.Context(), claims.UserID, user.UpdateMeRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Specialty: body.Specialty,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, result)
}

// GET /api/v1/users/me/roles
func (h *UserHandler) GetMyRoles(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	roles, err := h.svc.Roles(c.Context(), claims.UserID)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{"roles": roles})
}
