// Package provider is the single authority on provider assignment rules.
// Both the live API and the offline `system fix` commands validate
// assignments through this service, so the rules cannot drift apart.
package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entuser "github.com/Bemyself19/sehatynet_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	ProviderType *string
	Page         int
	PerPage      int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)
	GetByID(ctx context.Context, providerID uuid.UUID) (*repo.User, error)

	// ValidateAssignment checks that providerID may be assigned to a request
	// of the given type for patientID. Returns the provider on success.
	ValidateAssignment(ctx context.Context, patientID, providerID uuid.UUID, requestType string) (*repo.User, error)

	// DefaultForType returns the first active provider of the type required
	// by requestType, used by the offline fix commands when a request has no
	// usable provider.
	DefaultForType(ctx context.Context, requestType string) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type providerService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &providerService{db: db}
}

// ProviderTypeFor maps a request type to the provider type that serves it.
func ProviderTypeFor(requestType string) (string, error) {
	switch requestType {
	case "prescription":
		return "pharmacy", nil
	case "lab_result":
		return "laboratory", nil
	case "imaging":
		return "radiology", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownRequestType, requestType)
	}
}

func (s *providerService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleProvider),
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		)

	if req.ProviderType != nil {
		q = q.Where(entuser.ProviderTypeEQ(entuser.ProviderType(*req.ProviderType)))
	}

	providers, err := q.
		Order(entuser.ByLastName()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return providers, nil
}

func (s *providerService) GetByID(ctx context.Context, providerID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(providerID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	if u.Role != entuser.RoleProvider {
		return nil, ErrNotAProvider
	}
	return u, nil
}

func (s *providerService) ValidateAssignment(ctx context.Context, patientID, providerID uuid.UUID, requestType string) (*repo.User, error) {
	if providerID == uuid.Nil {
		return nil, ErrNoProvider
	}
	if providerID == patientID {
		return nil, ErrSamePatientProvider
	}

	wantType, err := ProviderTypeFor(requestType)
	if err != nil {
		return nil, err
	}

	p, err := s.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if p.Status != entuser.StatusACTIVE {
		return nil, ErrProviderInactive
	}
	if p.ProviderType == nil || string(*p.ProviderType) != wantType {
		return nil, fmt.Errorf("%w: request needs %s", ErrProviderTypeMismatch, wantType)
	}

	return p, nil
}

func (s *providerService) DefaultForType(ctx context.Context, requestType string) (*repo.User, error) {
	wantType, err := ProviderTypeFor(requestType)
	if err != nil {
		return nil, err
	}

	p, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleProvider),
			entuser.ProviderTypeEQ(entuser.ProviderType(wantType)),
			entuser.StatusEQ(entuser.StatusACTIVE),
			entuser.DeletedAtIsNil(),
		).
		Order(entuser.ByCreatedAt()).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("default provider: %w", err)
	}
	return p, nil
}
