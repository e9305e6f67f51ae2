package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const s3NoSuchKey = "NoSuchKey"

// S3SecretStore keeps one object per secret in an S3-compatible bucket.
// Object layout:
//
//	bucket/
//	└── [prefix/]<namespace>/
//	    ├── github
//	    └── netflix
//
// The namespace component is already part of the configured prefix.
type S3SecretStore struct {
	client *minio.Client
	bucket string
	prefix string
	logger *logger.Logger
}

// NewS3SecretStore builds the minio client for cfg. It does not talk to the
// server; call EnsureBucket for that.
func NewS3SecretStore(cfg config.S3, log *logger.Logger) (*S3SecretStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, storageErr("open s3", errors.New("endpoint and bucket are required"))
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		log.Err(err).Str("func", "NewS3SecretStore").Str("endpoint", cfg.Endpoint).Msg("failed to create minio client")
		return nil, storageErr("open s3", err)
	}

	return &S3SecretStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		logger: log,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3SecretStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Err(err).Str("func", "S3SecretStore.EnsureBucket").Str("bucket", s.bucket).Msg("failed to check bucket")
		return storageErr("check bucket", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return storageErr("create bucket", err)
	}
	s.logger.Info().Str("bucket", s.bucket).Msg("created bucket")

	return nil
}

func (s *S3SecretStore) objectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3SecretStore) listPrefix() string {
	if s.prefix == "" {
		return ""
	}
	return s.prefix + "/"
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == s3NoSuchKey
}

func (s *S3SecretStore) List(ctx context.Context) ([]string, error) {
	prefix := s.listPrefix()

	names := make([]string, 0)
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if object.Err != nil {
			logger.FromContext(ctx).Err(object.Err).Str("func", "S3SecretStore.List").Msg("failed to list objects")
			return nil, storageErr("list", object.Err)
		}

		name := strings.TrimPrefix(object.Key, prefix)
		// nested "directories" and hidden objects are not secrets
		if name == "" || strings.Contains(name, "/") || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (s *S3SecretStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, storageErr("read", err)
	}

	object, err := s.client.GetObject(ctx, s.bucket, s.objectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, s.mapError(ctx, "read", name, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, s.mapError(ctx, "read", name, err)
	}

	return data, nil
}

func (s *S3SecretStore) Write(ctx context.Context, name string, ciphertext []byte) error {
	if err := ValidateName(name); err != nil {
		return storageErr("write", err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(name),
		bytes.NewReader(ciphertext), int64(len(ciphertext)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return s.mapError(ctx, "write", name, err)
	}

	return nil
}

func (s *S3SecretStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return storageErr("delete", err)
	}

	objectName := s.objectName(name)
	// RemoveObject succeeds for absent objects; stat first to report not found
	if _, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{}); err != nil {
		return s.mapError(ctx, "delete", name, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return s.mapError(ctx, "delete", name, err)
	}

	return nil
}

func (s *S3SecretStore) Close() error {
	return nil
}

func (s *S3SecretStore) mapError(ctx context.Context, op, name string, err error) error {
	if isNoSuchKey(err) {
		return notFound(name)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "S3SecretStore."+op).
		Str("name", name).
		Msg("object store request failed")

	return storageErr(op, fmt.Errorf("object %q: %w", s.objectName(name), err))
}
