// Package stager maintains the ordered set of attachments pending submission
// and owns the lifetime of their preview resources.
package stager

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Attachment is one staged file plus its metadata and optional preview handle.
type Attachment struct {
	ID      string
	File    FileRef
	Preview *Preview // non-nil only for image/* files
}

// IsImage reports whether the attachment carries an image MIME type.
func (a *Attachment) IsImage() bool {
	return strings.HasPrefix(a.File.ContentType(), "image/")
}

// Stager owns the staging set. Insertion order is display and submission
// order; mutations happen only through AddFiles, Remove and Teardown.
type Stager struct {
	mu    sync.Mutex
	items []*Attachment
}

// New creates an empty stager.
func New() *Stager {
	return &Stager{}
}

// AddFiles stages one attachment per ref, appended in input order after the
// existing set. Image refs get an eagerly acquired preview. Duplicate names
// are allowed and treated as distinct attachments.
//
// On a preview acquisition failure the refs staged so far are kept and
// returned alongside the error; the failing ref is not staged, so no preview
// handle leaks.
func (s *Stager) AddFiles(refs ...FileRef) ([]*Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]*Attachment, 0, len(refs))
	for _, ref := range refs {
		att := &Attachment{ID: uuid.New().String(), File: ref}
		if strings.HasPrefix(ref.ContentType(), "image/") {
			p, err := newPreview(ref)
			if err != nil {
				return added, err
			}
			att.Preview = p
		}
		s.items = append(s.items, att)
		added = append(added, att)
	}
	return added, nil
}

// Remove releases the attachment's preview, if any, and drops it from the
// staging set. Unknown ids are a no-op.
func (s *Stager) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, att := range s.items {
		if att.ID == id {
			if att.Preview != nil {
				att.Preview.Release()
			}
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Teardown releases every remaining preview and empties the staging set.
// Call when the stager is discarded so unsubmitted attachments do not leak
// preview handles.
func (s *Stager) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, att := range s.items {
		if att.Preview != nil {
			att.Preview.Release()
		}
	}
	s.items = nil
}

// Items returns the ordered snapshot of staged attachments.
func (s *Stager) Items() []*Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Attachment, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of staged attachments.
func (s *Stager) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// LivePreviews counts staged attachments whose preview handle is still
// unreleased. Must always equal the number of staged image attachments.
func (s *Stager) LivePreviews() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, att := range s.items {
		if att.Preview != nil && !att.Preview.Released() {
			n++
		}
	}
	return n
}
