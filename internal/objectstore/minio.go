package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"docanalysis/internal/config"
)

// MinIO is a Store on an S3-compatible server.
type MinIO struct {
	client *minio.Client
	region string
}

func NewMinIO(cfg config.ObjectStore) (*MinIO, error) {
	c, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIO{client: c, region: cfg.Region}, nil
}

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchVersion", "InvalidArgument":
		return ErrNotFound
	case "NoSuchBucket":
		return ErrNoSuchBucket
	}
	return err
}

func (m *MinIO) Stat(ctx context.Context, bucket, name, version string) (Info, error) {
	if err := checkLocation(bucket, name); err != nil {
		return Info{}, err
	}
	st, err := m.client.StatObject(ctx, bucket, name, minio.StatObjectOptions{VersionID: version})
	if err != nil {
		return Info{}, mapMinioErr(err)
	}
	return Info{Bucket: bucket, Name: name, Version: st.VersionID, Size: st.Size, ContentType: st.ContentType}, nil
}

func (m *MinIO) Get(ctx context.Context, bucket, name, version string) ([]byte, Info, error) {
	info, err := m.Stat(ctx, bucket, name, version)
	if err != nil {
		return nil, Info{}, err
	}
	obj, err := m.client.GetObject(ctx, bucket, name, minio.GetObjectOptions{VersionID: version})
	if err != nil {
		return nil, Info{}, mapMinioErr(err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, Info{}, mapMinioErr(err)
	}
	return data, info, nil
}

func (m *MinIO) ensureBucket(ctx context.Context, bucket string) error {
	found, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if found {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

func (m *MinIO) Put(ctx context.Context, bucket, name string, data []byte, contentType string) (Info, error) {
	if err := checkLocation(bucket, name); err != nil {
		return Info{}, err
	}
	if err := m.ensureBucket(ctx, bucket); err != nil {
		return Info{}, err
	}
	up, err := m.client.PutObject(ctx, bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Info{}, fmt.Errorf("put object %s/%s: %w", bucket, name, err)
	}
	return Info{Bucket: bucket, Name: name, Version: up.VersionID, Size: up.Size, ContentType: contentType}, nil
}

func (m *MinIO) List(ctx context.Context, bucket, prefix string) ([]Info, error) {
	var out []Info
	for obj := range m.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, mapMinioErr(obj.Err)
		}
		out = append(out, Info{Bucket: bucket, Name: obj.Key, Version: obj.VersionID, Size: obj.Size, ContentType: obj.ContentType})
	}
	return out, nil
}

func (m *MinIO) Ping(ctx context.Context) error {
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio health check: %w", err)
	}
	return nil
}
