// Package fulfillment owns the lifecycle of medical requests: prescriptions,
// lab orders, and imaging orders routed to service providers. All status
// changes go through the transition table in the transition subpackage and
// write their notification events to the outbox inside the same transaction.
package fulfillment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entreq "github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/predicate"
	entitem "github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment/transition"
	"github.com/Bemyself19/sehatynet_backend/internal/service/outbox"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ItemInput struct {
	Name         string
	Dosage       *string
	Frequency    *string
	Duration     *string
	Instructions *string
}

type CreateRequest struct {
	PatientID           uuid.UUID
	DoctorID            *uuid.UUID
	ProviderID          uuid.UUID
	Type                string // prescription | lab_result | imaging
	Title               string
	Description         *string
	PrescriptionGroupID *uuid.UUID
	Items               []ItemInput
}

type ListRequest struct {
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Status     *string
	Type       *string
	Page       int
	PerPage    int
}

// FulfillRequest is the provider's per-item availability report.
// Availability maps item ID → in stock. The resulting request status is
// derived here, never supplied by the caller.
type FulfillRequest struct {
	ProviderID   uuid.UUID
	Availability map[uuid.UUID]bool
	Feedback     *string
}

type CompleteRequest struct {
	ProviderID     uuid.UUID
	ResultFileKey  *string
	ResultFileName *string
}

type ReassignRequest struct {
	PatientID     uuid.UUID
	NewProviderID uuid.UUID
}

// Viewer is the identity reads are scoped to. A regular user only sees
// requests they are party to (as patient, assigned provider, or issuing
// doctor); platform admins read unrestricted.
type Viewer struct {
	UserID       uuid.UUID
	Unrestricted bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.MedicalRequest, error)
	List(ctx context.Context, viewer Viewer, req ListRequest) ([]*repo.MedicalRequest, error)
	GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*repo.MedicalRequest, error)

	Fulfill(ctx context.Context, id uuid.UUID, req FulfillRequest) (*repo.MedicalRequest, error)
	AcceptPartial(ctx context.Context, id, patientID uuid.UUID) error
	MarkReady(ctx context.Context, id, providerID uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) error
	Cancel(ctx context.Context, id, patientID uuid.UUID) error
	Reassign(ctx context.Context, id uuid.UUID, req ReassignRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fulfillmentService struct {
	db        *repo.Client
	providers provider.Service
}

func New(db *repo.Client, providers provider.Service) Service {
	return &fulfillmentService{db: db, providers: providers}
}

func (s *fulfillmentService) Create(ctx context.Context, req CreateRequest) (*repo.MedicalRequest, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	if _, err := s.providers.ValidateAssignment(ctx, req.PatientID, req.ProviderID, req.Type); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	c := tx.MedicalRequest.Create().
		SetPatientID(req.PatientID).
		SetProviderID(req.ProviderID).
		SetType(entreq.Type(req.Type)).
		SetTitle(req.Title)

	if req.DoctorID != nil {
		c = c.SetDoctorID(*req.DoctorID)
	}
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.PrescriptionGroupID != nil {
		c = c.SetPrescriptionGroupID(*req.PrescriptionGroupID)
	}

	r, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for i, item := range req.Items {
		ic := tx.RequestItem.Create().
			SetRequestID(r.ID).
			SetName(item.Name).
			SetPosition(i)
		if item.Dosage != nil {
			ic = ic.SetNillableDosage(item.Dosage)
		}
		if item.Frequency != nil {
			ic = ic.SetNillableFrequency(item.Frequency)
		}
		if item.Duration != nil {
			ic = ic.SetNillableDuration(item.Duration)
		}
		if item.Instructions != nil {
			ic = ic.SetNillableInstructions(item.Instructions)
		}
		if _, err = ic.Save(ctx); err != nil {
			return nil, fmt.Errorf("create item %d: %w", i, err)
		}
	}

	err = outbox.Enqueue(ctx, tx.OutboxMessage, outbox.Event{
		Type:      outbox.EventRequestCreated,
		RequestID: r.ID,
		Payload: map[string]any{
			"patient_id":  req.PatientID.String(),
			"provider_id": req.ProviderID.String(),
			"type":        req.Type,
		},
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r, nil
}

// viewerScope restricts a query to requests the viewer is party to.
func viewerScope(v Viewer) predicate.MedicalRequest {
	return entreq.Or(
		entreq.PatientID(v.UserID),
		entreq.ProviderID(v.UserID),
		entreq.DoctorID(v.UserID),
	)
}

func (s *fulfillmentService) List(ctx context.Context, viewer Viewer, req ListRequest) ([]*repo.MedicalRequest, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.MedicalRequest.Query()

	if !viewer.Unrestricted {
		q = q.Where(viewerScope(viewer))
	}
	if req.PatientID != nil {
		q = q.Where(entreq.PatientID(*req.PatientID))
	}
	if req.ProviderID != nil {
		q = q.Where(entreq.ProviderID(*req.ProviderID))
	}
	if req.Status != nil {
		q = q.Where(entreq.StatusEQ(entreq.Status(*req.Status)))
	}
	if req.Type != nil {
		q = q.Where(entreq.TypeEQ(entreq.Type(*req.Type)))
	}

	reqs, err := q.
		WithItems(func(iq *repo.RequestItemQuery) {
			iq.Order(entitem.ByPosition())
		}).
		Order(entreq.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

// GetByID returns a request the viewer is allowed to see. A request outside
// the viewer's scope reads as not found, so callers cannot probe for the
// existence of other patients' records.
func (s *fulfillmentService) GetByID(ctx context.Context, viewer Viewer, id uuid.UUID) (*repo.MedicalRequest, error) {
	q := s.db.MedicalRequest.Query().
		Where(entreq.ID(id))
	if !viewer.Unrestricted {
		q = q.Where(viewerScope(viewer))
	}
	r, err := q.
		WithItems(func(iq *repo.RequestItemQuery) {
			iq.Order(entitem.ByPosition())
		}).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return r, nil
}

// get loads a request without viewer scoping, for the mutation paths that do
// their own party checks against the loaded row.
func (s *fulfillmentService) get(ctx context.Context, id uuid.UUID) (*repo.MedicalRequest, error) {
	r, err := s.db.MedicalRequest.Query().
		Where(entreq.ID(id)).
		WithItems(func(iq *repo.RequestItemQuery) {
			iq.Order(entitem.ByPosition())
		}).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return r, nil
}

// Fulfill records the provider's availability report. The target status is
// derived from the per-item availability: all in stock → confirmed, none →
// out_of_stock, mixed → pending_patient_confirmation.
func (s *fulfillmentService) Fulfill(ctx context.Context, id uuid.UUID, req FulfillRequest) (*repo.MedicalRequest, error) {
	r, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.ProviderID != req.ProviderID {
		return nil, ErrNotAssigned
	}

	items := r.Edges.Items
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if len(req.Availability) != len(items) {
		return nil, ErrItemCountMismatch
	}

	avail := make([]bool, 0, len(items))
	for _, item := range items {
		a, ok := req.Availability[item.ID]
		if !ok {
			return nil, fmt.Errorf("%w: missing item %s", ErrItemCountMismatch, item.ID)
		}
		avail = append(avail, a)
	}

	target, err := transition.Derive(avail)
	if err != nil {
		return nil, err
	}
	if !transition.Allowed(transition.Status(r.Status), target) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, r.Status, target)
	}
	if transition.RequiresFeedback(target) && (req.Feedback == nil || *req.Feedback == "") {
		return nil, ErrFeedbackRequired
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.MedicalRequest.Update().
		Where(
			entreq.ID(id),
			entreq.StatusEQ(r.Status),
			entreq.Version(r.Version),
		).
		SetStatus(entreq.Status(target)).
		AddVersion(1).
		SetFulfilledAt(time.Now())

	if req.Feedback != nil {
		upd = upd.SetFeedback(*req.Feedback)
	}

	var n int
	n, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	if n == 0 {
		err = ErrConflict
		return nil, err
	}

	for _, item := range items {
		err = tx.RequestItem.UpdateOneID(item.ID).
			SetAvailable(req.Availability[item.ID]).
			SetItemStatus(entitem.ItemStatus(transition.ItemStatusFor(req.Availability[item.ID]))).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("update item %s: %w", item.ID, err)
		}
	}

	err = outbox.Enqueue(ctx, tx.OutboxMessage, outbox.Event{
		Type:      eventForStatus(target),
		RequestID: id,
		Payload: map[string]any{
			"patient_id": r.PatientID.String(),
			"status":     string(target),
		},
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return s.get(ctx, id)
}

// AcceptPartial is the patient agreeing to collect only the available items
// of a partial offer.
func (s *fulfillmentService) AcceptPartial(ctx context.Context, id, patientID uuid.UUID) error {
	r, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if r.PatientID != patientID {
		return ErrNotRequestOwner
	}
	if !transition.Allowed(transition.Status(r.Status), transition.StatusPartiallyFulfilled) {
		return fmt.Errorf("%w: %s → partially_fulfilled", ErrInvalidTransition, r.Status)
	}

	return s.transitionTx(ctx, r, transition.StatusPartiallyFulfilled, outbox.EventRequestAccepted, nil)
}

func (s *fulfillmentService) MarkReady(ctx context.Context, id, providerID uuid.UUID) error {
	r, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if r.ProviderID != providerID {
		return ErrNotAssigned
	}
	if !transition.Allowed(transition.Status(r.Status), transition.StatusReadyForPickup) {
		return fmt.Errorf("%w: %s → ready_for_pickup", ErrInvalidTransition, r.Status)
	}

	return s.transitionTx(ctx, r, transition.StatusReadyForPickup, outbox.EventRequestReady, func(tx *repo.Tx) error {
		// Only items still in stock move to ready; unavailable lines stay as
		// they are for partially fulfilled requests.
		return tx.RequestItem.Update().
			Where(entitem.RequestID(id), entitem.Available(true)).
			SetItemStatus(entitem.ItemStatusReadyForPickup).
			Exec(ctx)
	})
}

func (s *fulfillmentService) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) error {
	r, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if r.ProviderID != req.ProviderID {
		return ErrNotAssigned
	}
	if r.Status == entreq.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if !transition.Allowed(transition.Status(r.Status), transition.StatusCompleted) {
		return fmt.Errorf("%w: %s → completed", ErrInvalidTransition, r.Status)
	}

	return s.transitionTx(ctx, r, transition.StatusCompleted, outbox.EventRequestCompleted, func(tx *repo.Tx) error {
		upd := tx.MedicalRequest.UpdateOneID(id).
			SetCompletedAt(time.Now())
		if req.ResultFileKey != nil {
			upd = upd.SetResultFileKey(*req.ResultFileKey)
		}
		if req.ResultFileName != nil {
			upd = upd.SetResultFileName(*req.ResultFileName)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("set completion fields: %w", err)
		}

		return tx.RequestItem.Update().
			Where(entitem.RequestID(id), entitem.Available(true)).
			SetItemStatus(entitem.ItemStatusCollected).
			Exec(ctx)
	})
}

func (s *fulfillmentService) Cancel(ctx context.Context, id, patientID uuid.UUID) error {
	r, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if r.PatientID != patientID {
		return ErrNotRequestOwner
	}
	if r.Status == entreq.StatusCompleted {
		return ErrAlreadyCompleted
	}
	if r.Status == entreq.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !transition.CancellableFrom(transition.Status(r.Status)) {
		return fmt.Errorf("%w: %s → cancelled", ErrInvalidTransition, r.Status)
	}

	return s.transitionTx(ctx, r, transition.StatusCancelled, outbox.EventRequestCancelled, func(tx *repo.Tx) error {
		return tx.MedicalRequest.UpdateOneID(id).
			SetCancelledAt(time.Now()).
			Exec(ctx)
	})
}

// Reassign moves a request to a new provider after a partial or failed
// fulfillment. The request restarts from pending: feedback is cleared and
// every item goes back to pending availability.
func (s *fulfillmentService) Reassign(ctx context.Context, id uuid.UUID, req ReassignRequest) error {
	r, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if r.PatientID != req.PatientID {
		return ErrNotRequestOwner
	}
	if !transition.ReassignableFrom(transition.Status(r.Status)) {
		return fmt.Errorf("%w: %s is not reassignable", ErrInvalidTransition, r.Status)
	}

	if _, err := s.providers.ValidateAssignment(ctx, r.PatientID, req.NewProviderID, string(r.Type)); err != nil {
		return err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var n int
	n, err = tx.MedicalRequest.Update().
		Where(
			entreq.ID(id),
			entreq.StatusEQ(r.Status),
			entreq.Version(r.Version),
		).
		SetStatus(entreq.StatusPending).
		SetProviderID(req.NewProviderID).
		ClearFeedback().
		ClearFulfilledAt().
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reassign request: %w", err)
	}
	if n == 0 {
		err = ErrConflict
		return err
	}

	err = tx.RequestItem.Update().
		Where(entitem.RequestID(id)).
		SetAvailable(true).
		SetItemStatus(entitem.ItemStatusPending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset items: %w", err)
	}

	err = outbox.Enqueue(ctx, tx.OutboxMessage, outbox.Event{
		Type:      outbox.EventRequestReassigned,
		RequestID: id,
		Payload: map[string]any{
			"patient_id":      r.PatientID.String(),
			"old_provider_id": r.ProviderID.String(),
			"new_provider_id": req.NewProviderID.String(),
		},
	})
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// transitionTx performs a guarded status change plus an outbox write in one
// transaction. extra, when non-nil, runs inside the same transaction after
// the guarded update succeeds.
func (s *fulfillmentService) transitionTx(
	ctx context.Context,
	r *repo.MedicalRequest,
	target transition.Status,
	eventType string,
	extra func(tx *repo.Tx) error,
) (err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var n int
	n, err = tx.MedicalRequest.Update().
		Where(
			entreq.ID(r.ID),
			entreq.StatusEQ(r.Status),
			entreq.Version(r.Version),
		).
		SetStatus(entreq.Status(target)).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n == 0 {
		err = ErrConflict
		return err
	}

	if extra != nil {
		if err = extra(tx); err != nil {
			return err
		}
	}

	err = outbox.Enqueue(ctx, tx.OutboxMessage, outbox.Event{
		Type:      eventType,
		RequestID: r.ID,
		Payload: map[string]any{
			"patient_id": r.PatientID.String(),
			"status":     string(target),
		},
	})
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func eventForStatus(s transition.Status) string {
	switch s {
	case transition.StatusConfirmed:
		return outbox.EventRequestConfirmed
	case transition.StatusOutOfStock:
		return outbox.EventRequestOutOfStock
	case transition.StatusPendingPatientConfirmation:
		return outbox.EventRequestPartial
	default:
		return string(s)
	}
}
