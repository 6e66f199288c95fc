// Package archive uploads submission audit payloads to S3-compatible
// storage. When no bucket is configured the NoopUploader is used and all
// uploads are skipped, keeping the system in local-only mode.
package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Amankrah/green-means-go-sub001/internal/config"
)

// Uploader stores submission payloads for later audit.
type Uploader interface {
	// Upload stores the JSON payload for the given assessment.
	Upload(ctx context.Context, assessmentID string, payload []byte) error
}

// s3Client defines the minimal minio.Client operations used by S3Uploader.
// This interface enables testing with mock implementations.
type s3Client interface {
	PutObject(ctx context.Context, bucket, objectName string, payload []byte) error
}

// minioClientWrapper wraps *minio.Client to satisfy the s3Client interface.
type minioClientWrapper struct {
	client *minio.Client
}

func (w *minioClientWrapper) PutObject(ctx context.Context, bucket, objectName string, payload []byte) error {
	opts := minio.PutObjectOptions{ContentType: "application/json"}
	_, err := w.client.PutObject(ctx, bucket, objectName, bytes.NewReader(payload), int64(len(payload)), opts)
	return err
}

// S3Uploader uploads submission payloads to S3-compatible storage.
type S3Uploader struct {
	client s3Client
	bucket string
}

// NewS3Uploader constructs an uploader from archive configuration.
func NewS3Uploader(cfg config.ArchiveConfig) (*S3Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create archive client: %w", err)
	}
	return &S3Uploader{
		client: &minioClientWrapper{client: client},
		bucket: cfg.Bucket,
	}, nil
}

// Upload stores the payload under a stable per-assessment key.
func (u *S3Uploader) Upload(ctx context.Context, assessmentID string, payload []byte) error {
	key := objectKey(assessmentID)
	if err := u.client.PutObject(ctx, u.bucket, key, payload); err != nil {
		return fmt.Errorf("upload submission archive: %w", err)
	}
	return nil
}

func objectKey(assessmentID string) string {
	return fmt.Sprintf("submissions/%s.json", assessmentID)
}

// NoopUploader skips all uploads; used when archiving is not configured.
type NoopUploader struct{}

// Upload does nothing.
func (NoopUploader) Upload(ctx context.Context, assessmentID string, payload []byte) error {
	return nil
}

// FromConfig returns the configured uploader, or the noop uploader when
// archiving is disabled.
func FromConfig(cfg config.ArchiveConfig) (Uploader, error) {
	if !cfg.Enabled() {
		return NoopUploader{}, nil
	}
	return NewS3Uploader(cfg)
}
