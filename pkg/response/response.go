package response

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"dbcheck/pkg/apperror"
)

// SuccessResponse is the envelope written when every step passed.
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	RunID     string      `json:"run_id,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the envelope written for a failed run.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Step      string `json:"step,omitempty"`
	Cause     string `json:"cause,omitempty"`
	RunID     string `json:"run_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// OK writes a success envelope around data.
func OK(w io.Writer, runID string, data interface{}) error {
	return write(w, SuccessResponse{
		Success:   true,
		Data:      data,
		RunID:     runID,
		Timestamp: now(),
	})
}

// Error writes an error envelope. An *apperror.Error is mapped field by
// field; anything else is reported as SYS_000.
func Error(w io.Writer, runID string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return write(w, ErrorResponse{
			ErrorCode: appErr.Code,
			Kind:      string(appErr.Kind),
			Message:   appErr.Message,
			Step:      string(appErr.Step),
			Cause:     apperror.Cause(appErr),
			RunID:     runID,
			Timestamp: now(),
		})
	}

	// Unknown error
	resp := ErrorResponse{
		ErrorCode: "SYS_000",
		Kind:      "internal",
		Message:   "Internal error",
		RunID:     runID,
		Timestamp: now(),
	}
	if err != nil {
		resp.Cause = err.Error()
	}
	return write(w, resp)
}

func write(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
