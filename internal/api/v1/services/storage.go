package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService archives uploaded media to object storage. Archival is
// best-effort: a failure never fails the transcription that triggered it.
type StorageService interface {
	Archive(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
}

// MinioStorageService implements StorageService using MinIO
type MinioStorageService struct {
	client *minio.Client
	bucket string
}

// NewMinioStorageServiceFromEnv builds a MinIO archive from MINIO_ENDPOINT,
// MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_BUCKET and MINIO_USE_SSL.
// Returns nil when no endpoint is configured.
func NewMinioStorageServiceFromEnv() (StorageService, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minioadmin"
	}

	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "minioadmin"
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "c2t-transcriptions"
	}

	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	service := &MinioStorageService{client: client, bucket: bucket}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return service, nil
}

// Archive uploads a media payload under a unique object key and returns the key.
func (s *MinioStorageService) Archive(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	timestamp := time.Now().Unix()
	fileID := uuid.New().String()[:8]
	ext := filepath.Ext(fileName)
	key := fmt.Sprintf("uploads/%d-%s%s", timestamp, fileID, ext)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": fileName,
			"uploaded-at":   time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to MinIO: %w", err)
	}

	return key, nil
}
