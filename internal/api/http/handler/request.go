package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
)

type RequestHandler struct {
	svc  fulfillment.Service
	auth authorize.IAuthorization
}

func NewRequestHandler(svc fulfillment.Service, auth authorize.IAuthorization) *RequestHandler {
	return &RequestHandler{svc: svc, auth: auth}
}

func userIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, found := pasetotoken.ClaimsFromFiber(c)
	if !found {
		return uuid.UUID{}, false
	}
	return claims.UserID, true
}

// viewerFromClaims builds the read scope for the caller. Only the platform
// admin wildcard policy grants manage on medical requests, so everyone else
// gets a view restricted to their own records.
func viewerFromClaims(c fiber.Ctx, auth authorize.IAuthorization) (fulfillment.Viewer, bool) {
	userID, found := userIDFromClaims(c)
	if !found {
		return fulfillment.Viewer{}, false
	}

	v := fulfillment.Viewer{UserID: userID}
	subject := authorize.GroupSubject(userID.String())
	allowed, err := auth.Enforce(c.Context(), subject, authorize.DomainSys,
		authorize.ResourceMedicalRequest, authorize.ActionManage)
	if err == nil && allowed {
		v.Unrestricted = true
	}
	return v, true
}

func mapRequestError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, fulfillment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, fulfillment.ErrNoItems),
		errors.Is(err, fulfillment.ErrFeedbackRequired),
		errors.Is(err, fulfillment.ErrItemCountMismatch):
		return badRequest(c, err.Error())
	case errors.Is(err, fulfillment.ErrInvalidTransition),
		errors.Is(err, fulfillment.ErrAlreadyCompleted),
		errors.Is(err, fulfillment.ErrAlreadyCancelled),
		errors.Is(err, fulfillment.ErrConflict):
		return conflict(c, err.Error())
	case errors.Is(err, fulfillment.ErrNotRequestOwner),
		errors.Is(err, fulfillment.ErrNotAssigned):
		return forbidden(c)
	case errors.Is(err, provider.ErrNoProvider),
		errors.Is(err, provider.ErrNotAProvider),
		errors.Is(err, provider.ErrProviderInactive),
		errors.Is(err, provider.ErrProviderTypeMismatch),
		errors.Is(err, provider.ErrSamePatientProvider),
		errors.Is(err, provider.ErrUnknownRequestType):
		return badRequest(c, err.Error())
	case errors.Is(err, provider.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /requests
func (h *RequestHandler) Create(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	var body struct {
		PatientID           *string `json:"patient_id"`
		ProviderID          string  `json:"provider_id"`
		Type                string  `json:"type"`
		Title               string  `json:"title"`
		Description         *string `json:"description"`
		PrescriptionGroupID *string `json:"prescription_group_id"`
		Items               []struct {
			Name         string  `json:"name"`
			Dosage       *string `json:"dosage"`
			Frequency    *string `json:"frequency"`
			Duration     *string `json:"duration"`
			Instructions *string `json:"instructions"`
		} `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ProviderID == "" || body.Type == "" || body.Title == "" {
		return badRequest(c, "provider_id, type and title are required")
	}

	providerID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}

	req := fulfillment.CreateRequest{
		PatientID:   userID,
		ProviderID:  providerID,
		Type:        body.Type,
		Title:       body.Title,
		Description: body.Description,
	}

	// A doctor creates on behalf of a patient; a patient creates for itself.
	if body.PatientID != nil && *body.PatientID != "" {
		pid, err := uuid.Parse(*body.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		if pid != userID {
			req.PatientID = pid
			req.DoctorID = &userID
		}
	}

	if body.PrescriptionGroupID != nil && *body.PrescriptionGroupID != "" {
		gid, err := uuid.Parse(*body.PrescriptionGroupID)
		if err != nil {
			return badRequest(c, "invalid prescription_group_id")
		}
		req.PrescriptionGroupID = &gid
	}

	for _, it := range body.Items {
		req.Items = append(req.Items, fulfillment.ItemInput{
			Name:         it.Name,
			Dosage:       it.Dosage,
			Frequency:    it.Frequency,
			Duration:     it.Duration,
			Instructions: it.Instructions,
		})
	}

	r, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapRequestError(c, err)
	}

	return created(c, r)
}

// GET /requests
func (h *RequestHandler) List(c fiber.Ctx) error {
	viewer, found := viewerFromClaims(c, h.auth)
	if !found {
		return unauthorized(c)
	}

	var q struct {
		PatientID  string `query:"patient_id"`
		ProviderID string `query:"provider_id"`
		Status     string `query:"status"`
		Type       string `query:"type"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := fulfillment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Type != "" {
		req.Type = &q.Type
	}

	reqs, err := h.svc.List(c.Context(), viewer, req)
	if err != nil {
		return mapRequestError(c, err)
	}

	return ok(c, reqs)
}

// GET /requests/:id
func (h *RequestHandler) GetByID(c fiber.Ctx) error {
	viewer, found := viewerFromClaims(c, h.auth)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	r, err := h.svc.GetByID(c.Context(), viewer, reqID)
	if err != nil {
		return mapRequestError(c, err)
	}

	return ok(c, r)
}

// PATCH /requests/:id/fulfill
// Provider reports per-item availability; the new status is derived
// server-side from the availability map.
func (h *RequestHandler) Fulfill(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	var body struct {
		Items []struct {
			ID        string `json:"id"`
			Available bool   `json:"available"`
		} `json:"items"`
		Feedback *string `json:"feedback"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Items) == 0 {
		return badRequest(c, "items are required")
	}

	availability := make(map[uuid.UUID]bool, len(body.Items))
	for _, it := range body.Items {
		id, err := uuid.Parse(it.ID)
		if err != nil {
			return badRequest(c, "invalid item id")
		}
		availability[id] = it.Available
	}

	r, err := h.svc.Fulfill(c.Context(), reqID, fulfillment.FulfillRequest{
		ProviderID:   userID,
		Availability: availability,
		Feedback:     body.Feedback,
	})
	if err != nil {
		return mapRequestError(c, err)
	}

	return ok(c, r)
}

// PATCH /requests/:id/accept-partial
// Patient accepts a partial fulfillment offer.
func (h *RequestHandler) AcceptPartial(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.svc.AcceptPartial(c.Context(), reqID, userID); err != nil {
		return mapRequestError(c, err)
	}

	return noContent(c)
}

// PATCH /requests/:id/ready
func (h *RequestHandler) MarkReady(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.svc.MarkReady(c.Context(), reqID, userID); err != nil {
		return mapRequestError(c, err)
	}

	return noContent(c)
}

// PATCH /requests/:id/complete
func (h *RequestHandler) Complete(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	var body struct {
		ResultFileKey  *string `json:"result_file_key"`
		ResultFileName *string `json:"result_file_name"`
	}
	_ = c.Bind().JSON(&body)

	if err := h.svc.Complete(c.Context(), reqID, fulfillment.CompleteRequest{
		ProviderID:     userID,
		ResultFileKey:  body.ResultFileKey,
		ResultFileName: body.ResultFileName,
	}); err != nil {
		return mapRequestError(c, err)
	}

	return noContent(c)
}

// PATCH /requests/:id/cancel
func (h *RequestHandler) Cancel(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	if err := h.svc.Cancel(c.Context(), reqID, userID); err != nil {
		return mapRequestError(c, err)
	}

	return noContent(c)
}

// PATCH /requests/:id/reassign
// Patient moves the request to a different provider; the request goes back
// to pending and provider feedback is cleared.
func (h *RequestHandler) Reassign(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	var body struct {
		ProviderID string `json:"provider_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ProviderID == "" {
		return badRequest(c, "provider_id is required")
	}

	newProviderID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}

	if err := h.svc.Reassign(c.Context(), reqID, fulfillment.ReassignRequest{
		PatientID:     userID,
		NewProviderID: newProviderID,
	}); err != nil {
		return mapRequestError(c, err)
	}

	return noContent(c)
}
