package objectstore

import (
	"context"
	"errors"
	"testing"

	"docanalysis/internal/config"
)

func TestFilesystemPutGet(t *testing.T) {
	ctx := context.Background()
	fs := NewFilesystem(t.TempDir())

	info, err := fs.Put(ctx, "docs", "in/letter.txt", []byte("Dear reader"), "")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != 11 || info.Version == "" {
		t.Fatalf("unexpected info: %+v", info)
	}
	data, got, err := fs.Get(ctx, "docs", "in/letter.txt", "")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "Dear reader" || got.Version != info.Version {
		t.Fatalf("unexpected object %q %+v", data, got)
	}
	if got.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("content type %q", got.ContentType)
	}
}

func TestFilesystemVersionMismatch(t *testing.T) {
	ctx := context.Background()
	fs := NewFilesystem(t.TempDir())
	first, err := fs.Put(ctx, "docs", "a.txt", []byte("one"), "")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := fs.Put(ctx, "docs", "a.txt", []byte("two"), ""); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, _, err := fs.Get(ctx, "docs", "a.txt", first.Version); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stale version, got %v", err)
	}
}

func TestFilesystemMissing(t *testing.T) {
	ctx := context.Background()
	fs := NewFilesystem(t.TempDir())
	if _, err := fs.Stat(ctx, "nobucket", "a", ""); !errors.Is(err, ErrNoSuchBucket) {
		t.Fatalf("expected ErrNoSuchBucket, got %v", err)
	}
	if _, err := fs.Put(ctx, "docs", "x", []byte("x"), ""); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := fs.Stat(ctx, "docs", "missing", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := fs.Stat(ctx, "docs", "../escape", ""); !errors.Is(err, ErrInvalidObject) {
		t.Fatalf("expected ErrInvalidObject, got %v", err)
	}
}

func TestFilesystemList(t *testing.T) {
	ctx := context.Background()
	fs := NewFilesystem(t.TempDir())
	for _, name := range []string{"out/job/2", "out/job/1", "other"} {
		if _, err := fs.Put(ctx, "b", name, []byte(name), ""); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}
	items, err := fs.List(ctx, "b", "out/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "out/job/1" || items[1].Name != "out/job/2" {
		t.Fatalf("unexpected listing %+v", items)
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	if _, err := New(config.ObjectStore{Kind: "tape"}, t.TempDir()); err == nil {
		t.Fatal("expected error")
	}
	s, err := New(config.ObjectStore{Kind: "filesystem"}, t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
