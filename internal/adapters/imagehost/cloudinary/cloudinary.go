// Package cloudinary implements the image host port against Cloudinary.
package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
}

var _ ports.ImageHost = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are required")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}

	return &Client{cld: cld, folder: cfg.Folder}, nil
}

func (c *Client) Upload(ctx context.Context, r io.Reader) (*domain.UploadedAsset, error) {
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}

	return &domain.UploadedAsset{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
	}, nil
}

func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if _, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	return nil
}
