// File: assets/s3.go
package assets

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"xtrnia/logger"
)

type objectDeleter interface {
	DeleteObjectWithContext(aws.Context, *s3.DeleteObjectInput, ...request.Option) (*s3.DeleteObjectOutput, error)
}

// S3 stores assets in an S3 bucket. S3 has no image pipeline, so images
// are stored as uploaded.
type S3 struct {
	uploader      s3manageriface.UploaderAPI
	deleter       objectDeleter
	bucket        string
	publicBaseURL string
	folder        string
}

// NewS3 builds a host for bucket in region using the default AWS
// credential chain.
func NewS3(region, bucket, publicBaseURL, folder string) (*S3, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("s3: create session: %w", err)
	}
	return &S3{
		uploader:      s3manager.NewUploader(sess),
		deleter:       s3.New(sess),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		folder:        folder,
	}, nil
}

// Upload puts data under <folder>/<kind folder>/<uuid><ext>.
func (s *S3) Upload(ctx context.Context, kind Kind, data []byte) (*Asset, error) {
	mt := mimetype.Detect(data)
	key := folderFor(s.folder, kind) + "/" + uuid.NewString() + mt.Extension()

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mt.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 upload %s: %w", key, err)
	}

	url := out.Location
	if s.publicBaseURL != "" {
		url = s.publicBaseURL + "/" + key
	}

	logger.Debug.Printf("[S3.Upload] stored s3://%s/%s (%d bytes)", s.bucket, key, len(data))
	return &Asset{URL: url, ExternalID: key, Size: int64(len(data))}, nil
}

// Delete removes the object with key externalID.
func (s *S3) Delete(ctx context.Context, _ Kind, externalID string) error {
	_, err := s.deleter.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(externalID),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", externalID, err)
	}
	return nil
}
