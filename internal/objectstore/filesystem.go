package objectstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gabriel-vasile/mimetype"
)

// Filesystem stores objects as files under Root/{bucket}/{name}. The
// version of an object is the hex xxhash of its content, so a versioned
// read fails once the object has been overwritten.
type Filesystem struct {
	Root string
}

func NewFilesystem(root string) *Filesystem {
	return &Filesystem{Root: root}
}

func (f *Filesystem) path(bucket, name string) string {
	return filepath.Join(f.Root, bucket, filepath.FromSlash(name))
}

func contentVersion(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

func (f *Filesystem) Stat(ctx context.Context, bucket, name, version string) (Info, error) {
	_, info, err := f.Get(ctx, bucket, name, version)
	return info, err
}

func (f *Filesystem) Get(_ context.Context, bucket, name, version string) ([]byte, Info, error) {
	if err := checkLocation(bucket, name); err != nil {
		return nil, Info{}, err
	}
	if _, err := os.Stat(filepath.Join(f.Root, bucket)); errors.Is(err, fs.ErrNotExist) {
		return nil, Info{}, ErrNoSuchBucket
	}
	data, err := os.ReadFile(f.path(bucket, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Info{}, ErrNotFound
		}
		return nil, Info{}, err
	}
	info := Info{
		Bucket:      bucket,
		Name:        name,
		Version:     contentVersion(data),
		Size:        int64(len(data)),
		ContentType: mimetype.Detect(data).String(),
	}
	if version != "" && version != info.Version {
		return nil, Info{}, ErrNotFound
	}
	return data, info, nil
}

func (f *Filesystem) Put(_ context.Context, bucket, name string, data []byte, contentType string) (Info, error) {
	if err := checkLocation(bucket, name); err != nil {
		return Info{}, err
	}
	p := f.path(bucket, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return Info{}, err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return Info{}, err
	}
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	return Info{Bucket: bucket, Name: name, Version: contentVersion(data), Size: int64(len(data)), ContentType: contentType}, nil
}

func (f *Filesystem) List(_ context.Context, bucket, prefix string) ([]Info, error) {
	base := filepath.Join(f.Root, bucket)
	if _, err := os.Stat(base); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSuchBucket
	}
	var out []Info
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, Info{Bucket: bucket, Name: key, Size: fi.Size()})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, err
}

func (f *Filesystem) Ping(context.Context) error {
	return os.MkdirAll(f.Root, 0o755)
}
