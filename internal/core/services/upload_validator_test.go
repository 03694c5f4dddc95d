package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gourav02/acda-org/internal/core/domain"
)

func TestValidateBatch_AcceptsValidBatch(t *testing.T) {
	files := []domain.UploadFile{
		{Name: "a.jpg", Size: 2 * 1024 * 1024, ContentType: "image/jpeg"},
		{Name: "b.png", Size: 5 * 1024 * 1024, ContentType: "image/png"},
		{Name: "c.webp", Size: 9 * 1024 * 1024, ContentType: "image/webp"},
	}

	if err := ValidateBatch(files, domain.DefaultUploadLimits()); err != nil {
		t.Fatalf("expected valid batch to pass, got %v", err)
	}
}

func TestValidateBatch_RejectsTooManyFiles(t *testing.T) {
	files := make([]domain.UploadFile, 16)
	for i := range files {
		files[i] = domain.UploadFile{Name: fmt.Sprintf("img-%d.jpg", i), Size: 1024, ContentType: "image/jpeg"}
	}

	err := ValidateBatch(files, domain.DefaultUploadLimits())
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(ve.Message, "Maximum 15 images allowed.") {
		t.Fatalf("expected count-exceeded message, got %q", ve.Message)
	}
	if !strings.Contains(ve.Message, "1 too many") {
		t.Fatalf("expected excess count in message, got %q", ve.Message)
	}
}

func TestValidateBatch_AccumulatesTypeAndSizeErrors(t *testing.T) {
	limits := domain.DefaultUploadLimits()
	files := []domain.UploadFile{
		{Name: "notes.pdf", Size: 1024, ContentType: "application/pdf"},
		{Name: "big.jpg", Size: 11 * 1024 * 1024, ContentType: "image/jpeg"},
		{Name: "ok.png", Size: 1024, ContentType: "image/png"},
	}

	err := ValidateBatch(files, limits)
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if !strings.Contains(ve.Message, "notes.pdf: application/pdf is not an allowed image type") {
		t.Fatalf("expected type error for notes.pdf, got %q", ve.Message)
	}
	if !strings.Contains(ve.Message, "big.jpg: exceeds 10.0 MB limit (11.0 MB)") {
		t.Fatalf("expected size error for big.jpg, got %q", ve.Message)
	}
	if parts := strings.Split(ve.Message, "; "); len(parts) != 2 {
		t.Fatalf("expected both errors joined, got %q", ve.Message)
	}
}

func TestValidateBatch_ReportsRemainingAggregateAllowance(t *testing.T) {
	limits := domain.UploadLimits{
		MaxCount:          15,
		MaxItemBytes:      10 * 1024 * 1024,
		MaxAggregateBytes: 20 * 1024 * 1024,
		AllowedTypes:      []string{"image/jpeg"},
	}
	files := []domain.UploadFile{
		{Name: "a.jpg", Size: 8 * 1024 * 1024, ContentType: "image/jpeg"},
		{Name: "b.jpg", Size: 7 * 1024 * 1024, ContentType: "image/jpeg"},
		{Name: "c.jpg", Size: 6 * 1024 * 1024, ContentType: "image/jpeg"},
	}

	err := ValidateBatch(files, limits)
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	// c.jpg pushes the running total over: current 15 MB, remaining 5 MB.
	if !strings.Contains(ve.Message, "Total size would exceed 20.0 MB limit. Current: 15.0 MB, Remaining: 5.0 MB") {
		t.Fatalf("expected aggregate message with remaining allowance, got %q", ve.Message)
	}
}

func TestFormatSize(t *testing.T) {
	tt := []struct {
		bytes int64
		want  string
	}{
		{512, "0.5 KB"},
		{100 * 1024, "100.0 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
		{int64(1.5 * 1024 * 1024), "1.5 MB"},
	}

	for _, tc := range tt {
		if got := formatSize(tc.bytes); got != tc.want {
			t.Errorf("formatSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}
