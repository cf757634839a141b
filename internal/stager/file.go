package stager

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FileRef is an opaque reference to a file's binary content and metadata.
type FileRef interface {
	Name() string
	Size() int64
	ContentType() string
	ModTime() time.Time
	Open() (io.ReadCloser, error)
}

// diskFile is a FileRef backed by a file on the local filesystem.
type diskFile struct {
	path        string
	name        string
	size        int64
	contentType string
	modTime     time.Time
}

// OpenDiskFile stats a local file and resolves its MIME type, by extension
// first and content sniffing as fallback.
func OpenDiskFile(path string) (FileRef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		if mt, err := mimetype.DetectFile(path); err == nil {
			ct = mt.String()
		} else {
			ct = "application/octet-stream"
		}
	}
	// Drop parameters like "; charset=utf-8"; only the media type matters here.
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	return &diskFile{
		path:        path,
		name:        filepath.Base(path),
		size:        info.Size(),
		contentType: ct,
		modTime:     info.ModTime(),
	}, nil
}

func (f *diskFile) Name() string        { return f.name }
func (f *diskFile) Size() int64         { return f.size }
func (f *diskFile) ContentType() string { return f.contentType }
func (f *diskFile) ModTime() time.Time  { return f.modTime }

func (f *diskFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }
