// validator_test.go - Tests for transport limits and field validation
package ingest

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func buildForm(question []string, files ...*multipart.FileHeader) *multipart.Form {
	form := &multipart.Form{
		Value: map[string][]string{},
		File:  map[string][]*multipart.FileHeader{},
	}
	if question != nil {
		form.Value[QuestionField] = question
	}
	if len(files) > 0 {
		form.File[FilesField] = files
	}
	return form
}

func manyFiles(n int, size int64) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, n)
	for i := range files {
		files[i] = fileHeader("f.txt", "text/plain", size)
	}
	return files
}

func TestCheckTransportLimits(t *testing.T) {
	tests := []struct {
		name     string
		files    []*multipart.FileHeader
		wantCode string
	}{
		{
			name:  "no files",
			files: nil,
		},
		{
			name:  "exactly ten files at the size cap",
			files: manyFiles(10, MaxFileSize),
		},
		{
			name:     "eleven files",
			files:    manyFiles(11, 10),
			wantCode: "TOO_MANY_FILES",
		},
		{
			name:     "single oversized file",
			files:    manyFiles(1, MaxFileSize+1),
			wantCode: "FILE_TOO_LARGE",
		},
		{
			name:     "count checked before size",
			files:    manyFiles(11, MaxFileSize+1),
			wantCode: "TOO_MANY_FILES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CheckTransportLimits(buildForm([]string{"q"}, tt.files...))
			if tt.wantCode == "" {
				if v != nil {
					t.Fatalf("expected no violation, got %s", v.Code)
				}
				return
			}
			if v == nil {
				t.Fatal("expected a violation, got nil")
			}
			if v.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, v.Code)
			}
			if v.Error() == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestValidateQuestionField(t *testing.T) {
	tests := []struct {
		name     string
		question []string
		wantOK   bool
	}{
		{
			name:     "missing question field",
			question: nil,
			wantOK:   false,
		},
		{
			name:     "empty question",
			question: []string{""},
			wantOK:   false,
		},
		{
			name:     "single character",
			question: []string{"?"},
			wantOK:   true,
		},
		{
			// The server check is deliberately not trimmed; only the client
			// gate trims.
			name:     "all whitespace passes",
			question: []string{"   "},
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Validate(buildForm(tt.question))
			if outcome.OK() != tt.wantOK {
				t.Fatalf("expected OK=%v, got %v (errors: %v)", tt.wantOK, outcome.OK(), outcome.Errors)
			}
			if !tt.wantOK {
				if len(outcome.Errors[QuestionField]) == 0 {
					t.Errorf("expected a field error for %q, got %v", QuestionField, outcome.Errors)
				}
				return
			}
			if outcome.Accepted.Question != tt.question[0] {
				t.Errorf("expected question echoed verbatim, got %q", outcome.Accepted.Question)
			}
		})
	}
}

func TestValidateFileSummaries(t *testing.T) {
	form := buildForm([]string{"What is this?"},
		fileHeader("a.png", "image/png", 1000),
		fileHeader("b.txt", "text/plain", 50),
		fileHeader("raw.bin", "", 7),
	)

	outcome := Validate(form)
	if !outcome.OK() {
		t.Fatalf("expected acceptance, got errors: %v", outcome.Errors)
	}

	files := outcome.Accepted.Files
	if len(files) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(files))
	}

	wantNames := []string{"a.png", "b.txt", "raw.bin"}
	wantTypes := []string{"image/png", "text/plain", "application/octet-stream"}
	wantSizes := []int64{1000, 50, 7}
	for i := range files {
		if files[i].OriginalName != wantNames[i] {
			t.Errorf("file %d: expected name %s, got %s", i, wantNames[i], files[i].OriginalName)
		}
		if files[i].MimeType != wantTypes[i] {
			t.Errorf("file %d: expected type %s, got %s", i, wantTypes[i], files[i].MimeType)
		}
		if files[i].SizeBytes != wantSizes[i] {
			t.Errorf("file %d: expected size %d, got %d", i, wantSizes[i], files[i].SizeBytes)
		}
	}
}

func TestValidateRejectionCarriesNoAcceptance(t *testing.T) {
	outcome := Validate(buildForm([]string{""}, fileHeader("a.txt", "text/plain", 10)))
	if outcome.OK() {
		t.Fatal("expected rejection")
	}
	if outcome.Accepted != nil {
		t.Error("rejected outcome must not carry an acceptance")
	}
	if !strings.Contains(outcome.Errors[QuestionField][0], "question") {
		t.Errorf("field error should mention the field: %v", outcome.Errors)
	}
}
