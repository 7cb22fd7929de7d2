package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/arzan03/aircnc-server/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// publicReadPolicy lets anyone GET objects of the bucket, so listing pages
// can embed image URLs directly.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

// MinioStore keeps listing images in a MinIO bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the configured endpoint. Call EnsureBucket before
// serving uploads.
func NewMinioStore(cfg config.Images) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket with a public read policy when it does not
// exist yet. Existing buckets are left untouched.
func (s *MinioStore) EnsureBucket(ctx context.Context) (created bool, err error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return false, nil
	}

	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return false, fmt.Errorf("failed to create bucket: %w", err)
	}
	if err = s.client.SetBucketPolicy(ctx, s.bucket, fmt.Sprintf(publicReadPolicy, s.bucket)); err != nil {
		return true, fmt.Errorf("failed to set bucket policy: %w", err)
	}
	return true, nil
}

// Put stores r under key and returns the public URL of the object.
func (s *MinioStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return s.ObjectURL(key), nil
}

// ObjectURL returns the path-style URL of key.
func (s *MinioStore) ObjectURL(key string) string {
	u := *s.client.EndpointURL()
	u.Path = "/" + s.bucket + "/" + key
	return u.String()
}

// Bucket returns the bucket name.
func (s *MinioStore) Bucket() string {
	return s.bucket
}

