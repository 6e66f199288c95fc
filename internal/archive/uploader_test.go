package archive

import (
	"context"
	"errors"
	"testing"

	"github.com/Amankrah/green-means-go-sub001/internal/config"
)

type mockS3Client struct {
	putErr     error
	gotBucket  string
	gotKey     string
	gotPayload []byte
}

func (m *mockS3Client) PutObject(ctx context.Context, bucket, objectName string, payload []byte) error {
	m.gotBucket = bucket
	m.gotKey = objectName
	m.gotPayload = payload
	return m.putErr
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &mockS3Client{}
	u := &S3Uploader{client: client, bucket: "submissions"}

	payload := []byte(`{"request":{},"result":{}}`)
	if err := u.Upload(context.Background(), "assess-1", payload); err != nil {
		t.Fatalf("Upload() = %v", err)
	}

	if client.gotBucket != "submissions" {
		t.Errorf("bucket = %q, want submissions", client.gotBucket)
	}
	if client.gotKey != "submissions/assess-1.json" {
		t.Errorf("key = %q, want submissions/assess-1.json", client.gotKey)
	}
	if string(client.gotPayload) != string(payload) {
		t.Errorf("payload = %s", client.gotPayload)
	}
}

func TestS3Uploader_UploadError(t *testing.T) {
	client := &mockS3Client{putErr: errors.New("connection refused")}
	u := &S3Uploader{client: client, bucket: "submissions"}

	err := u.Upload(context.Background(), "assess-1", []byte("{}"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, client.putErr) {
		t.Errorf("error = %v, want wrapped put error", err)
	}
}

func TestObjectKey(t *testing.T) {
	if got := objectKey("01HQZX"); got != "submissions/01HQZX.json" {
		t.Errorf("objectKey() = %q", got)
	}
}

func TestNoopUploader(t *testing.T) {
	if err := (NoopUploader{}).Upload(context.Background(), "x", []byte("{}")); err != nil {
		t.Errorf("Upload() = %v", err)
	}
}

func TestFromConfig(t *testing.T) {
	u, err := FromConfig(config.ArchiveConfig{})
	if err != nil {
		t.Fatalf("FromConfig() = %v", err)
	}
	if _, ok := u.(NoopUploader); !ok {
		t.Errorf("uploader = %T, want NoopUploader without bucket", u)
	}

	u, err = FromConfig(config.ArchiveConfig{
		Endpoint:  "minio.internal:9000",
		Bucket:    "submissions",
		AccessKey: "ak",
		SecretKey: "sk",
	})
	if err != nil {
		t.Fatalf("FromConfig() with bucket = %v", err)
	}
	if _, ok := u.(*S3Uploader); !ok {
		t.Errorf("uploader = %T, want *S3Uploader with bucket", u)
	}
}
