// Package ingest validates incoming ask submissions: transport-level caps
// first, then field validation. Stateless; each request is checked against
// its own buffered body only.
package ingest

import (
	"fmt"
	"mime/multipart"

	"github.com/askrelay/backend/internal/models"
)

// Hard transport caps. Fixed by contract, not configurable.
const (
	MaxFileCount = 10
	MaxFileSize  = 25 << 20 // 25 MiB per file part
)

// FilesField is the multipart field name carrying file parts.
const FilesField = "files"

// QuestionField is the multipart field name carrying the question text.
const QuestionField = "question"

// LimitViolation reports a transport-level cap breach. These are rejected
// before field validation ever runs.
type LimitViolation struct {
	Code    string
	Message string
}

func (v *LimitViolation) Error() string { return v.Message }

// CheckTransportLimits rejects requests exceeding the file count cap or the
// per-file size cap.
func CheckTransportLimits(form *multipart.Form) *LimitViolation {
	files := form.File[FilesField]
	if len(files) > MaxFileCount {
		return &LimitViolation{
			Code:    "TOO_MANY_FILES",
			Message: fmt.Sprintf("at most %d files are allowed, got %d", MaxFileCount, len(files)),
		}
	}
	for _, f := range files {
		if f.Size > MaxFileSize {
			return &LimitViolation{
				Code:    "FILE_TOO_LARGE",
				Message: fmt.Sprintf("file %q exceeds the %d MiB limit", f.Filename, MaxFileSize>>20),
			}
		}
	}
	return nil
}

// FieldErrors maps a field name to its validation failures. The shape is
// suitable for direct display.
type FieldErrors map[string][]string

// Acceptance summarizes a validated submission: the question verbatim and the
// ordered file metadata.
type Acceptance struct {
	Question string
	Files    []models.FileSummary
}

// Outcome is the result of validating one request: an acceptance or a set of
// field errors, never both.
type Outcome struct {
	Accepted *Acceptance
	Errors   FieldErrors
}

// OK reports whether the request was accepted.
func (o Outcome) OK() bool { return o.Accepted != nil }

// Validate checks the question field and summarizes the file parts. The
// question must be present with length >= 1; the value is deliberately not
// trimmed first, so an all-whitespace question passes. File part order is
// preserved from the multipart body.
func Validate(form *multipart.Form) Outcome {
	errs := FieldErrors{}

	question, ok := firstValue(form, QuestionField)
	if !ok {
		errs[QuestionField] = append(errs[QuestionField], "question is required")
	} else if len(question) < 1 {
		errs[QuestionField] = append(errs[QuestionField], "question must not be empty")
	}

	if len(errs) > 0 {
		return Outcome{Errors: errs}
	}

	files := form.File[FilesField]
	summaries := make([]models.FileSummary, 0, len(files))
	for _, f := range files {
		summaries = append(summaries, models.FileSummary{
			OriginalName: f.Filename,
			MimeType:     partContentType(f),
			SizeBytes:    f.Size,
		})
	}

	return Outcome{Accepted: &Acceptance{Question: question, Files: summaries}}
}

func firstValue(form *multipart.Form, field string) (string, bool) {
	values := form.Value[field]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func partContentType(f *multipart.FileHeader) string {
	if ct := f.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
