package http

import (
	"errors"
	"net/http"
	"strings"

	"parceltrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// statusCodes maps error kinds to HTTP statuses. The first match wins, so kinds
// that may appear joined with others come first.
var statusCodes = []struct {
	kind   error
	status int
}{
	{errs.ErrUnauthenticated, http.StatusUnauthorized},
	{errs.ErrAccessDenied, http.StatusForbidden},
	{errs.ErrValueIsInvalid, http.StatusBadRequest},
	{errs.ErrValueIsRequired, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest},
	{errs.ErrObjectNotFound, http.StatusNotFound},
	{errs.ErrObjectAlreadyExists, http.StatusConflict},
	{errs.ErrObjectIsReferenced, http.StatusConflict},
}

// StatusCode returns the HTTP status for err. Anything unclassified is a storage
// or programming error and becomes 500.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for _, sc := range statusCodes {
		if errors.Is(err, sc.kind) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}

// invalidRequestError reports a request that could not be decoded or failed
// struct validation.
type invalidRequestError struct {
	err     error
	details map[string]string
}

func newInvalidRequestError(err error) *invalidRequestError {
	e := &invalidRequestError{err: err}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		e.details = make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			e.details[fe.Field()] = fe.Tag()
		}
	}
	return e
}

func (e *invalidRequestError) Error() string {
	return errs.NewValueIsInvalidErrorWithCause("request", e.err).Error()
}

func (e *invalidRequestError) Unwrap() []error {
	return []error{errs.ErrValueIsInvalid, e.err}
}

// errorHandler is installed as the echo HTTPErrorHandler.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusCode(err)
	resp := ErrorResponse{
		Code:      status,
		Message:   err.Error(),
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	}

	var httpErr *echo.HTTPError
	var invalid *invalidRequestError
	switch {
	case errors.As(err, &httpErr):
		resp.Message = strings.ToLower(http.StatusText(httpErr.Code))
		if msg, ok := httpErr.Message.(string); ok {
			resp.Message = msg
		}
	case errors.As(err, &invalid):
		resp.Details = invalid.details
	case status == http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"error", err, "request_id", resp.RequestID)
		resp.Message = "internal error"
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, resp)
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
	}
}
