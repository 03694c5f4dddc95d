package domain

// UploadFile describes one candidate file in an upload batch. Only the
// metadata is inspected during validation; bytes are streamed separately.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
}

// UploadLimits bounds an upload batch before anything is sent to the image
// host.
type UploadLimits struct {
	MaxCount          int
	MaxItemBytes      int64
	MaxAggregateBytes int64
	AllowedTypes      []string
}

// DefaultUploadLimits matches the limits enforced by the admin dashboard:
// 15 images, 10 MB each, 100 MB per batch.
func DefaultUploadLimits() UploadLimits {
	return UploadLimits{
		MaxCount:          15,
		MaxItemBytes:      10 * 1024 * 1024,
		MaxAggregateBytes: 100 * 1024 * 1024,
		AllowedTypes: []string{
			"image/jpeg",
			"image/jpg",
			"image/png",
			"image/webp",
			"image/avif",
		},
	}
}

// UploadedAsset is the durable reference returned by the image host after a
// successful upload.
type UploadedAsset struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
}
