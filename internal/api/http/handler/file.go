package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	svcfile "github.com/Bemyself19/sehatynet_backend/internal/service/file"
	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment"
)

type FileHandler struct {
	svc      svcfile.Service
	requests fulfillment.Service
}

func NewFileHandler(svc svcfile.Service, requests fulfillment.Service) *FileHandler {
	return &FileHandler{svc: svc, requests: requests}
}

// POST /requests/:id/result-file
// Multipart upload of a result document by the assigned provider. Returns
// {key, file_name, size, mime_type}; the key is then passed to the complete
// call to attach it to the request.
func (h *FileHandler) UploadResultFile(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	r, err := h.requests.GetByID(c.Context(), fulfillment.Viewer{UserID: userID}, requestID)
	if err != nil {
		return mapRequestError(c, err)
	}
	if r.ProviderID != userID {
		return forbidden(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file field is required")
	}

	result, err := h.svc.UploadResultFile(c.Context(), requestID, fh)
	if err != nil {
		switch {
		case errors.Is(err, svcfile.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, svcfile.ErrUnsupportedFileType):
			return badRequest(c, err.Error())
		default:
			return internalError(c)
		}
	}

	return created(c, fiber.Map{
		"key":       result.Key,
		"file_name": result.FileName,
		"size":      result.Size,
		"mime_type": result.MimeType,
	})
}

// GET /requests/:id/result-file
// Redirects the patient (or assigned provider) to a presigned download URL.
func (h *FileHandler) DownloadResultFile(c fiber.Ctx) error {
	userID, found := userIDFromClaims(c)
	if !found {
		return unauthorized(c)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	r, err := h.requests.GetByID(c.Context(), fulfillment.Viewer{UserID: userID}, requestID)
	if err != nil {
		return mapRequestError(c, err)
	}
	if r.PatientID != userID && r.ProviderID != userID {
		return forbidden(c)
	}

	key := ""
	if r.ResultFileKey != nil {
		key = *r.ResultFileKey
	}

	url, err := h.svc.GetDownloadURL(c.Context(), key)
	if err != nil {
		if errors.Is(err, svcfile.ErrNoResultFile) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.Redirect().To(url)
}
