// Package client turns a question and the staged attachments into one
// multipart submission and maps the response to a tagged result.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/askrelay/backend/internal/models"
	"github.com/askrelay/backend/internal/stager"
)

const defaultTimeout = 60 * time.Second

// Result is the tagged outcome of one submission attempt. Exactly one of
// Accepted and Failure is set.
type Result struct {
	Accepted *models.AskResponse
	Failure  string
}

// OK reports whether the submission was accepted.
func (r Result) OK() bool { return r.Accepted != nil }

// Client issues multipart submissions to an ask server. Only one submission
// should be in flight at a time; callers gate on Submitting.
type Client struct {
	http       *resty.Client
	submitting atomic.Bool
}

// New creates a client for the given base URL, e.g. "http://localhost:4000".
// Retries are deliberately disabled; a failed submission requires an explicit
// user-initiated resubmit.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
	}
}

// CanSubmit is the enablement gate: the trimmed question must be non-empty.
// Note the server does not trim; an all-whitespace question that slipped past
// this gate would still be accepted there.
func CanSubmit(question string) bool {
	return strings.TrimSpace(question) != ""
}

// Submitting reports whether a submission is in flight.
func (c *Client) Submitting() bool { return c.submitting.Load() }

// Submit sends the question and attachments as one multipart POST, preserving
// staging order, and maps the response to a Result. The staging set is never
// mutated; on failure the caller keeps its inputs for resubmission.
func (c *Client) Submit(ctx context.Context, question string, attachments []*stager.Attachment) Result {
	c.submitting.Store(true)
	defer c.submitting.Store(false)

	req := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"question": question})

	for _, att := range attachments {
		data, err := readAll(att.File)
		if err != nil {
			return Result{Failure: fmt.Sprintf("reading %s: %v", att.File.Name(), err)}
		}
		req.SetMultipartField("files", att.File.Name(), att.File.ContentType(), bytes.NewReader(data))
	}

	resp, err := req.Post("/api/ask")
	if err != nil {
		return Result{Failure: fmt.Sprintf("submit failed: %v", err)}
	}

	if !resp.IsSuccess() {
		msg := strings.TrimSpace(string(resp.Body()))
		if msg == "" {
			msg = fmt.Sprintf("request failed: %d", resp.StatusCode())
		}
		return Result{Failure: msg}
	}

	var accepted models.AskResponse
	if err := json.Unmarshal(resp.Body(), &accepted); err != nil {
		return Result{Failure: fmt.Sprintf("invalid response body: %v", err)}
	}
	return Result{Accepted: &accepted}
}

func readAll(ref stager.FileRef) ([]byte, error) {
	rc, err := ref.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
