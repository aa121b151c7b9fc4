// File: services/upload_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"xtrnia/apperr"
	"xtrnia/assets"
	"xtrnia/logger"
	"xtrnia/metrics"
)

const (
	MaxImageBytes int64 = 10 << 20
	MaxPDFBytes   int64 = 20 << 20
)

// Rejection reasons reported to metrics.
const (
	reasonUnsupportedType = "unsupported_type"
	reasonTooLarge        = "too_large"
	reasonContentMismatch = "content_mismatch"
	reasonEmpty           = "empty"
	reasonHostFailure     = "host_failure"
)

type uploadRule struct {
	types       []string
	maxBytes    int64
	typeMessage string
	sizeMessage string
	hostMessage string
}

var uploadRules = map[assets.Kind]uploadRule{
	assets.KindImage: {
		types:       []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"},
		maxBytes:    MaxImageBytes,
		typeMessage: "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.",
		sizeMessage: "File size exceeds 10MB limit",
		hostMessage: "Failed to upload image",
	},
	assets.KindPDF: {
		types:       []string{"application/pdf"},
		maxBytes:    MaxPDFBytes,
		typeMessage: "Invalid file type. Only PDF files are allowed.",
		sizeMessage: "File size exceeds 20MB limit",
		hostMessage: "Failed to upload brochure",
	},
}

func (r uploadRule) allows(contentType string) bool {
	for _, t := range r.types {
		if t == contentType {
			return true
		}
	}
	return false
}

// matches reports whether the sniffed content is one of the allowed types.
func (r uploadRule) matches(detected *mimetype.MIME) bool {
	for _, t := range r.types {
		if detected.Is(t) {
			return true
		}
	}
	return false
}

// UploadFile is a file received from an admin, before it is checked.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadService gates files before they reach the asset host.
type UploadService struct {
	host    assets.Host
	metrics metrics.Publisher
}

func NewUploadService(host assets.Host, pub metrics.Publisher) *UploadService {
	if pub == nil {
		pub = metrics.Noop{}
	}
	return &UploadService{host: host, metrics: pub}
}

// normalizeContentType drops parameters and lowercases the media type.
func normalizeContentType(ct string) string {
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// Accept checks f against the rules for kind and forwards it to the asset
// host. The declared type and size are checked first, then the body is read
// up to the limit and its content is sniffed. Nothing reaches the host
// unless every check passes.
func (s *UploadService) Accept(ctx context.Context, kind assets.Kind, f UploadFile) (*assets.Asset, error) {
	rule, ok := uploadRules[kind]
	if !ok {
		return nil, apperr.Validationf("kind", "unknown upload kind %q", kind)
	}
	if f.Body == nil {
		return nil, apperr.Validationf("file", "No file uploaded")
	}

	if !rule.allows(normalizeContentType(f.ContentType)) {
		return nil, s.reject(kind, reasonUnsupportedType, apperr.New(apperr.UnsupportedType, rule.typeMessage))
	}
	if f.Size > rule.maxBytes {
		return nil, s.reject(kind, reasonTooLarge, apperr.New(apperr.TooLarge, rule.sizeMessage))
	}

	// one extra byte tells us the declared size was a lie
	data, err := io.ReadAll(io.LimitReader(f.Body, rule.maxBytes+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.Validation, "Failed to read uploaded file", err)
	}
	if int64(len(data)) > rule.maxBytes {
		return nil, s.reject(kind, reasonTooLarge, apperr.New(apperr.TooLarge, rule.sizeMessage))
	}
	if len(data) == 0 {
		return nil, s.reject(kind, reasonEmpty, apperr.Validationf("file", "Uploaded file is empty"))
	}

	detected := mimetype.Detect(data)
	if !rule.matches(detected) {
		logger.Warn.Printf("[UploadService.Accept] %s: declared %s but content is %s", f.Filename, f.ContentType, detected.String())
		return nil, s.reject(kind, reasonContentMismatch,
			apperr.New(apperr.UnsupportedType, "File content does not match its declared type"))
	}

	asset, err := s.host.Upload(ctx, kind, data)
	if err != nil {
		logger.Error.Printf("[UploadService.Accept] %s upload failed: %v", kind, err)
		return nil, s.reject(kind, reasonHostFailure, apperr.External(rule.hostMessage, err))
	}

	s.metrics.UploadAccepted(string(kind), asset.Size)
	logger.Info.Printf("[UploadService.Accept] stored %s %s (%d bytes)", kind, asset.ExternalID, asset.Size)
	return asset, nil
}

func (s *UploadService) reject(kind assets.Kind, reason string, err error) error {
	s.metrics.UploadRejected(string(kind), reason)
	logger.Debug.Printf("[UploadService.Accept] rejected %s upload: %s", kind, reason)
	return err
}

// Limit returns the byte ceiling for kind, or an error for unknown kinds.
func Limit(kind assets.Kind) (int64, error) {
	rule, ok := uploadRules[kind]
	if !ok {
		return 0, fmt.Errorf("unknown upload kind %q", kind)
	}
	return rule.maxBytes, nil
}
