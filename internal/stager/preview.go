package stager

import (
	"fmt"
	"io"
	"sync"
)

// Preview is an owned, memory-backed render handle for an image attachment.
// Exactly one exists per image attachment while it is staged, and it must be
// released exactly once, on removal or stager teardown.
type Preview struct {
	mu       sync.Mutex
	data     []byte
	released bool
}

func newPreview(ref FileRef) (*Preview, error) {
	rc, err := ref.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s for preview: %w", ref.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s for preview: %w", ref.Name(), err)
	}
	return &Preview{data: data}, nil
}

// Bytes returns the renderable content, or nil once released.
func (p *Preview) Bytes() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return nil
	}
	return p.data
}

// Released reports whether the handle has been released.
func (p *Preview) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// Release frees the preview. Further calls are no-ops, so owners cannot
// double-release by accident.
func (p *Preview) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return
	}
	p.released = true
	p.data = nil
}
