package file

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
)

func TestUploadResultFileValidation(t *testing.T) {
	svc := New(nil)
	ctx := context.Background()
	requestID := uuid.New()

	_, err := svc.UploadResultFile(ctx, requestID, &multipart.FileHeader{
		Filename: "report.pdf",
		Size:     MaxResultFileSize + 1,
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("oversized upload error = %v, want ErrFileTooLarge", err)
	}

	for _, name := range []string{"report.exe", "notes.txt", "scan"} {
		_, err := svc.UploadResultFile(ctx, requestID, &multipart.FileHeader{
			Filename: name,
			Size:     1024,
		})
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Errorf("upload %q error = %v, want ErrUnsupportedFileType", name, err)
		}
	}

	// Accepted types get past validation; the error that follows comes from
	// the empty file header, not from the checks above.
	_, err = svc.UploadResultFile(ctx, requestID, &multipart.FileHeader{
		Filename: "irm.dcm",
		Size:     1024,
	})
	if errors.Is(err, ErrUnsupportedFileType) || errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("valid DICOM name rejected by validation: %v", err)
	}
}

func TestGetDownloadURLWithoutKey(t *testing.T) {
	svc := New(nil)
	if _, err := svc.GetDownloadURL(context.Background(), ""); !errors.Is(err, ErrNoResultFile) {
		t.Fatalf("empty key error = %v, want ErrNoResultFile", err)
	}
}
