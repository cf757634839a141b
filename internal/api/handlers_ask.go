// handlers_ask.go - Submission ingress handler
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/askrelay/backend/internal/ingest"
	"github.com/askrelay/backend/internal/models"
)

// HandleAsk accepts one multipart submission: a required question field and
// up to ten file parts. Transport caps are checked before field validation;
// file contents are summarized, never stored.
func (h *Handler) HandleAsk(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return NewBadRequestError("invalid multipart body", err)
	}
	defer form.RemoveAll()

	if v := ingest.CheckTransportLimits(form); v != nil {
		return NewLimitError(v)
	}

	outcome := ingest.Validate(form)
	if !outcome.OK() {
		return NewFieldErrors(outcome.Errors)
	}

	resp := models.AskResponse{
		Message:   "Received question and files successfully",
		Question:  outcome.Accepted.Question,
		Files:     outcome.Accepted.Files,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	if wantsMsgpack(c) {
		data, err := msgpack.Marshal(resp)
		if err != nil {
			return NewInternalError("failed to encode msgpack", err)
		}
		return c.Blob(http.StatusOK, "application/msgpack", data)
	}

	return c.JSON(http.StatusOK, resp)
}

// wantsMsgpack checks content negotiation for the binary encoding.
func wantsMsgpack(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "application/msgpack")
}
