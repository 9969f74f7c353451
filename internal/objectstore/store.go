// Package objectstore resolves S3Object locations for the emulator. Two
// backends exist: a directory tree under the workspace and a MinIO (or any
// S3-compatible) server.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docanalysis/internal/config"
)

var (
	ErrNotFound      = errors.New("object not found")
	ErrNoSuchBucket  = errors.New("bucket not found")
	ErrInvalidObject = errors.New("invalid object location")
)

// Info describes a stored object.
type Info struct {
	Bucket      string
	Name        string
	Version     string
	Size        int64
	ContentType string
}

// Store is the object storage used for documents, manifests and job output.
type Store interface {
	// Stat returns object metadata. An empty version selects the latest.
	Stat(ctx context.Context, bucket, name, version string) (Info, error)
	// Get reads the whole object.
	Get(ctx context.Context, bucket, name, version string) ([]byte, Info, error)
	// Put writes an object, creating the bucket when missing.
	Put(ctx context.Context, bucket, name string, data []byte, contentType string) (Info, error)
	// List returns objects under prefix in key order.
	List(ctx context.Context, bucket, prefix string) ([]Info, error)
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
}

// New builds the store configured in cfg. root is the resolved filesystem
// root for the filesystem backend.
func New(cfg config.ObjectStore, root string) (Store, error) {
	switch cfg.Kind {
	case "", "filesystem":
		return NewFilesystem(root), nil
	case "minio":
		return NewMinIO(cfg)
	default:
		return nil, fmt.Errorf("unknown object store kind %q", cfg.Kind)
	}
}

func checkLocation(bucket, name string) error {
	if bucket == "" || name == "" {
		return fmt.Errorf("%w: bucket and name are required", ErrInvalidObject)
	}
	if strings.Contains(bucket, "/") || strings.Contains(bucket, "..") {
		return fmt.Errorf("%w: bucket %q", ErrInvalidObject, bucket)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("%w: name %q", ErrInvalidObject, name)
		}
	}
	return nil
}
