package artifacts

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Logger defines the interface for logging operations in the artifacts package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// ErrNotFound reports a cache miss.
var ErrNotFound = errors.New("artifacts: object not found")

// Store is an object cache for raw fetched pages, keyed by URL. The
// loaders consult it before going to the network; the workflow layer
// decides when it is stale by wiping the bucket.
type Store struct {
	client *minio.Client
	cfg    *Config
	logger Logger
}

// NewStore connects to the object store and makes sure the bucket exists.
func NewStore(cfg *Config, logger Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("artifacts: failed to initialize client: %w", err)
	}

	s := &Store{client: client, cfg: cfg, logger: logger}
	if err := s.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	logger.Info("Artifact store ready", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.Bucket,
	})
	return s, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("artifacts: bucket lookup failed: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("artifacts: bucket creation failed: %w", err)
	}
	return nil
}

// Put stores the raw body fetched from url.
func (s *Store) Put(ctx context.Context, url string, body []byte) error {
	key := objectKey(url)
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return fmt.Errorf("artifacts: put %s: %w", key, err)
	}

	s.logger.Debug("Cached page", nil, map[string]interface{}{
		"url":   url,
		"bytes": len(body),
	})
	return nil
}

// Get returns the cached body for url, or ErrNotFound on a miss.
func (s *Store) Get(ctx context.Context, url string) ([]byte, error) {
	key := objectKey(url)
	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("artifacts: get %s: %w", key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("artifacts: read %s: %w", key, err)
	}
	return body, nil
}

// objectKey derives the bucket key for a URL. Hashing keeps arbitrary
// URLs inside the object-name rules.
func objectKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]) + ".raw"
}
