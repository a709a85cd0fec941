// Package storage keeps menu images in an S3-compatible bucket and hands
// out the permanent object URL that gets persisted alongside the item.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	ic "github.com/plateful/backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type ObjectStore interface {
	// Upload stores the object under a key scoped to ownerID and returns
	// its public URL.
	Upload(ctx context.Context, ownerID, filename, contentType string, body io.Reader) (string, error)

	// Download fetches the object a previous Upload returned the URL for.
	Download(ctx context.Context, objectURL string) ([]byte, error)
}

type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Store(ctx context.Context, cfg *ic.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimSuffix(cfg.S3Endpoint, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.S3Region)
	}

	return &S3Store{client: client, bucket: cfg.S3Bucket, baseURL: baseURL}, nil
}

func (s *S3Store) Upload(ctx context.Context, ownerID, filename, contentType string, body io.Reader) (string, error) {
	key := storageKey(ownerID, filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.objectURL(key), nil
}

func (s *S3Store) Download(ctx context.Context, objectURL string) ([]byte, error) {
	key, err := s.keyFromURL(objectURL)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func storageKey(ownerID, filename string) string {
	return fmt.Sprintf("%s/%s-%s", ownerID, uuid.New(), filename)
}

func (s *S3Store) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}

func (s *S3Store) keyFromURL(objectURL string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(objectURL, prefix) {
		return "", fmt.Errorf("object url %q not under %q", objectURL, prefix)
	}
	return strings.TrimPrefix(objectURL, prefix), nil
}
