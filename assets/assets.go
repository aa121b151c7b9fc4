// Package assets abstracts the third-party binary storage that holds
// competition images and brochure PDFs.
// File: assets/assets.go
package assets

import (
	"context"
	"fmt"

	"xtrnia/config"
)

// Kind selects upload handling on the asset host.
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// Asset is what the host returns for a stored file.
type Asset struct {
	URL        string `json:"url"`
	ExternalID string `json:"externalId"`
	Size       int64  `json:"size"`
}

// Host stores and removes files. Implementations must be safe for
// concurrent use.
type Host interface {
	Upload(ctx context.Context, kind Kind, data []byte) (*Asset, error)
	Delete(ctx context.Context, kind Kind, externalID string) error
}

// New builds the host selected in cfg.
func New(cfg config.Assets) (Host, error) {
	switch cfg.Host {
	case config.AssetHostCloudinary:
		return NewCloudinary(cfg.CloudinaryURL, cfg.Folder)
	case config.AssetHostS3:
		return NewS3(cfg.AWSRegion, cfg.S3Bucket, cfg.S3PublicBaseURL, cfg.Folder)
	default:
		return nil, fmt.Errorf("unsupported asset host %q", cfg.Host)
	}
}

// folderFor returns the sub-folder each kind is filed under.
func folderFor(root string, kind Kind) string {
	sub := "competitions"
	if kind == KindPDF {
		sub = "brochures"
	}
	if root == "" {
		return sub
	}
	return root + "/" + sub
}
