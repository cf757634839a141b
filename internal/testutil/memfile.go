// memfile.go - In-memory file fake for testing
package testutil

import (
	"bytes"
	"io"
	"time"
)

// MemFile implements stager.FileRef backed by a byte slice.
type MemFile struct {
	FileName string
	Type     string
	Data     []byte
	Modified time.Time
	OpenErr  error // returned by Open when set
}

// NewMemFile creates an in-memory file with the given name, MIME type and
// content.
func NewMemFile(name, contentType string, data []byte) *MemFile {
	return &MemFile{
		FileName: name,
		Type:     contentType,
		Data:     data,
		Modified: time.Now(),
	}
}

func (f *MemFile) Name() string        { return f.FileName }
func (f *MemFile) Size() int64         { return int64(len(f.Data)) }
func (f *MemFile) ContentType() string { return f.Type }
func (f *MemFile) ModTime() time.Time  { return f.Modified }

func (f *MemFile) Open() (io.ReadCloser, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}
