package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
)

// ---------- DTOs ----------

type UpdateMeRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Specialty *string // doctors only; ignored for other roles
}

type Service interface {
	GetByID(ctx context.Context, id string) (*repo.User, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*repo.User, error)
	Roles(ctx context.Context, userID uuid.UUID) ([]authorize.Role, error)
}

type UserService struct {
	client    *repo.Client
	authorize authorize.IAuthorization
}

func New(client *repo.Client, authz authorize.IAuthorization) *UserService {
	return &UserService{
		client:    client,
		authorize: authz,
	}
}

// GetByID retrieves a user by ID, excluding soft-deleted users
func (s *UserService) GetByID(ctx context.Context, id string) (*repo.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return s.GetMe(ctx, uid)
}

func (s *UserService) GetMe(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.client.User.Query().
		Where(
			user.ID(userID),
			user.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *UserService) UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*repo.User, error) {
	u, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	upd := s.client.User.UpdateOne(u)

	if req.FirstName != nil {
		upd = upd.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		upd = upd.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.Email != nil {
		addr := strings.TrimSpace(strings.ToLower(*req.Email))
		if _, err := mail.ParseAddress(addr); err != nil {
			return nil, ErrInvalidEmail
		}
		taken, err := s.client.User.Query().
			Where(user.Email(addr), user.IDNEQ(userID), user.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailAlreadyExists
		}
		// Changing the address invalidates any prior verification.
		upd = upd.SetEmail(addr).SetEmailVerified(false)
	}
	if req.Specialty != nil && u.Role == user.RoleDoctor {
		upd = upd.SetSpecialty(strings.TrimSpace(*req.Specialty))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Roles returns the user's sys-domain RBAC roles.
func (s *UserService) Roles(ctx context.Context, userID uuid.UUID) ([]authorize.Role, error) {
	return authorize.GetAccountRoles(ctx, s.authorize, userID.String())
}
