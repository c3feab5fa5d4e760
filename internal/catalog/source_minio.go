package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig locates resources in an S3-compatible bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string // Optional key prefix, e.g. "resources/"
	UseSSL    bool
}

// MinioSource reads resources from objects named <prefix><kind>/<id>.txt.
type MinioSource struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioSource creates a bucket backed Source.
func NewMinioSource(cfg MinioConfig) (*MinioSource, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	prefix := cfg.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &MinioSource{client: client, bucket: cfg.Bucket, prefix: prefix}, nil
}

func (s *MinioSource) kindPrefix(kind Kind) string {
	return s.prefix + string(kind) + "/"
}

// List returns ids of the .txt objects directly under the kind prefix.
func (s *MinioSource) List(ctx context.Context, kind Kind) ([]string, error) {
	prefix := s.kindPrefix(kind)

	var ids []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects %s: %w", prefix, obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		if !strings.HasSuffix(name, resourceExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, path.Ext(name)))
	}
	sort.Strings(ids)
	return ids, nil
}

// Read downloads one resource object.
func (s *MinioSource) Read(ctx context.Context, kind Kind, id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	key := s.kindPrefix(kind) + id + resourceExt

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("get object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read object %s: %w", key, err)
	}
	return string(data), nil
}
