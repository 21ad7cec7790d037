// Package file stores result documents (lab reports, imaging files) in
// S3-compatible storage and hands out presigned download URLs.
package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	s3pkg "github.com/Bemyself19/sehatynet_backend/pkg/s3"
)

var (
	ErrNoResultFile        = errors.New("request has no result file attached")
	ErrFileTooLarge        = errors.New("result file exceeds the maximum upload size")
	ErrUnsupportedFileType = errors.New("result file type is not supported")
)

// MaxResultFileSize caps result uploads at 20 MiB.
const MaxResultFileSize = 20 << 20

// Result documents are reports and scans: PDF, common image formats, DICOM.
var resultFileExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".dcm":  {},
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// UploadResultFile stores a result document under the request's key
	// prefix and returns the stored key for the fulfillment service to
	// attach on completion.
	UploadResultFile(ctx context.Context, requestID uuid.UUID, f *multipart.FileHeader) (*UploadResult, error)
	GetDownloadURL(ctx context.Context, fileKey string) (string, error)
	Delete(ctx context.Context, fileKey string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fileService struct {
	s3 *s3pkg.Client
}

func New(s3Client *s3pkg.Client) Service {
	return &fileService{s3: s3Client}
}

func (s *fileService) UploadResultFile(ctx context.Context, requestID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh.Size > MaxResultFileSize {
		return nil, ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := resultFileExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("results/%s/%s%s", requestID, uuid.New(), ext)

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, fileKey string) (string, error) {
	if fileKey == "" {
		return "", ErrNoResultFile
	}
	url, err := s.s3.PresignDownload(ctx, fileKey)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}

func (s *fileService) Delete(ctx context.Context, fileKey string) error {
	return s.s3.Delete(ctx, fileKey)
}
