package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/internal/service/auth"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Phone        string `json:"phone"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		NationalID   string `json:"national_id"`
		Role         string `json:"role"`
		ProviderType string `json:"provider_type"`
		Specialty    string `json:"specialty"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Role == "" {
		body.Role = "patient"
	}

	if err := h.svc.Register(c.Context(), auth.RegisterRequest{
		Phone:        body.Phone,
		Email:        body.Email,
		Password:     body.Password,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		NationalID:   body.NationalID,
		Role:         body.Role,
		ProviderType: body.ProviderType,
		Specialty:    body.Specialty,
	}); err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{"message": "verification code sent to your phone"})
}

// POST /api/v1/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c fiber.Ctx) error {
	var body struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.VerifyOTP(c.Context(), auth.VerifyOTPRequest{
		Phone: body.Phone,
		Code:  body.Code,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Phone      string `json:"phone"`
		NationalID string `json:"national_id"`
		Password   string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Phone:      body.Phone,
		NationalID: body.NationalID,
		Password:   body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout  (requires AuthRequired middleware)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrPhoneAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrNationalIDExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidNationalID):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrProviderTypeNeeded):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrOTPExpired):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrOTPInvalid):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrOTPMaxAttempts):
		return tooManyRequests(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrAccountSuspended):
		return forbidden(c)
	case errors.Is(err, auth.ErrPhoneNotVerified):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrAccountLocked):
		return tooManyRequests(c, err.Error())
	case errors.Is(err, auth.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}
