package services

import (
	"fmt"
	"strings"

	"github.com/gourav02/acda-org/internal/core/domain"
)

// ValidateBatch checks an upload batch against the configured limits before
// any bytes are sent to the image host. A batch over the count limit fails
// immediately; per-file type and size problems are accumulated in input
// order and reported together, followed by the aggregate size check.
func ValidateBatch(files []domain.UploadFile, limits domain.UploadLimits) error {
	if len(files) > limits.MaxCount {
		return domain.NewValidationError(fmt.Sprintf(
			"Maximum %d images allowed. You sent %d too many.",
			limits.MaxCount, len(files)-limits.MaxCount,
		))
	}

	var errs []string
	for _, f := range files {
		if !typeAllowed(f.ContentType, limits.AllowedTypes) {
			errs = append(errs, fmt.Sprintf("%s: %s is not an allowed image type", f.Name, f.ContentType))
			continue
		}
		if f.Size > limits.MaxItemBytes {
			errs = append(errs, fmt.Sprintf("%s: exceeds %s limit (%s)",
				f.Name, formatSize(limits.MaxItemBytes), formatSize(f.Size)))
		}
	}

	var total int64
	for _, f := range files {
		if total+f.Size > limits.MaxAggregateBytes {
			errs = append(errs, fmt.Sprintf("Total size would exceed %s limit. Current: %s, Remaining: %s",
				formatSize(limits.MaxAggregateBytes),
				formatSize(total),
				formatSize(limits.MaxAggregateBytes-total)))
			break
		}
		total += f.Size
	}

	if len(errs) > 0 {
		return domain.NewValidationError(strings.Join(errs, "; "))
	}
	return nil
}

func typeAllowed(contentType string, allowed []string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, t := range allowed {
		if contentType == t {
			return true
		}
	}
	return false
}

// formatSize renders a byte count the way the dashboard does: KB below one
// megabyte, MB otherwise, one decimal, 1024-based.
func formatSize(bytes int64) string {
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
