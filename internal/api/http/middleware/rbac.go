package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
)

// RequirePermission checks if the authenticated user has the given permission
// in the sys domain. Object-level ownership (patient owns the request,
// provider is assigned to it) is enforced by the service layer.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
