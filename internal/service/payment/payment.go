// Package payment records simulated payments against fulfillment requests.
// There is no gateway integration; recording is gated by the platform-wide
// payments_enabled switch.
package payment

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entpay "github.com/Bemyself19/sehatynet_backend/internal/repo/payment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/settings"
	"github.com/Bemyself19/sehatynet_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RecordRequest struct {
	RequestID   uuid.UUID
	PayerID     uuid.UUID
	Amount      int64 // millimes
	Description *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*repo.Payment, error)
	ListByPayer(ctx context.Context, payerID uuid.UUID, page, perPage int) ([]*repo.Payment, error)
	ListByRequest(ctx context.Context, viewer fulfillment.Viewer, requestID uuid.UUID) ([]*repo.Payment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type paymentService struct {
	db       *repo.Client
	settings settings.Service
	requests fulfillment.Service
}

func New(db *repo.Client, settingsSvc settings.Service, requests fulfillment.Service) Service {
	return &paymentService{db: db, settings: settingsSvc, requests: requests}
}

func (s *paymentService) Record(ctx context.Context, req RecordRequest) (*repo.Payment, error) {
	enabled, err := s.settings.PaymentsEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("check payments switch: %w", err)
	}
	if !enabled {
		return nil, ErrPaymentsDisabled
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	r, err := s.requests.GetByID(ctx, fulfillment.Viewer{UserID: req.PayerID}, req.RequestID)
	if err != nil {
		return nil, err
	}
	if r.PatientID != req.PayerID {
		return nil, ErrNotRequestOwner
	}

	ref, err := codes.GenerateSecureToken(codes.TokenByteLength)
	if err != nil {
		return nil, fmt.Errorf("generate reference: %w", err)
	}

	c := s.db.Payment.Create().
		SetRequestID(req.RequestID).
		SetPayerID(req.PayerID).
		SetAmount(req.Amount).
		SetReference(codes.NormalizeCode(ref))
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return p, nil
}

func (s *paymentService) ListByPayer(ctx context.Context, payerID uuid.UUID, page, perPage int) ([]*repo.Payment, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	pays, err := s.db.Payment.Query().
		Where(entpay.PayerID(payerID)).
		Order(entpay.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return pays, nil
}

// ListByRequest returns a request's payments to a party of the request; the
// viewer-scoped lookup answers not found for anyone else.
func (s *paymentService) ListByRequest(ctx context.Context, viewer fulfillment.Viewer, requestID uuid.UUID) ([]*repo.Payment, error) {
	if _, err := s.requests.GetByID(ctx, viewer, requestID); err != nil {
		return nil, err
	}

	pays, err := s.db.Payment.Query().
		Where(entpay.RequestID(requestID)).
		Order(entpay.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list request payments: %w", err)
	}
	return pays, nil
}
