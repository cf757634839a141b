// file_test.go - Tests for disk-backed file refs and MIME resolution
package stager

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestOpenDiskFileByExtension(t *testing.T) {
	path := writeTempFile(t, "photo.png", pngHeader)

	ref, err := OpenDiskFile(path)
	if err != nil {
		t.Fatalf("OpenDiskFile failed: %v", err)
	}
	if ref.Name() != "photo.png" {
		t.Errorf("expected name photo.png, got %s", ref.Name())
	}
	if ref.ContentType() != "image/png" {
		t.Errorf("expected image/png, got %s", ref.ContentType())
	}
	if ref.Size() != int64(len(pngHeader)) {
		t.Errorf("expected size %d, got %d", len(pngHeader), ref.Size())
	}
}

func TestOpenDiskFileStripsParameters(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("hello"))

	ref, err := OpenDiskFile(path)
	if err != nil {
		t.Fatalf("OpenDiskFile failed: %v", err)
	}
	// mime.TypeByExtension returns "text/plain; charset=utf-8" here
	if ref.ContentType() != "text/plain" {
		t.Errorf("expected text/plain, got %s", ref.ContentType())
	}
}

func TestOpenDiskFileSniffsUnknownExtension(t *testing.T) {
	path := writeTempFile(t, "photo", pngHeader)

	ref, err := OpenDiskFile(path)
	if err != nil {
		t.Fatalf("OpenDiskFile failed: %v", err)
	}
	if ref.ContentType() != "image/png" {
		t.Errorf("expected sniffed image/png, got %s", ref.ContentType())
	}
}

func TestOpenDiskFileReadsContent(t *testing.T) {
	content := []byte("file body")
	path := writeTempFile(t, "body.txt", content)

	ref, err := OpenDiskFile(path)
	if err != nil {
		t.Fatalf("OpenDiskFile failed: %v", err)
	}

	rc, err := ref.Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestOpenDiskFileErrors(t *testing.T) {
	if _, err := OpenDiskFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := OpenDiskFile(t.TempDir()); err == nil {
		t.Error("expected an error for a directory")
	}
}
