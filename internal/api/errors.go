package api

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/programguide/internal/errors"
	"github.com/listenupapp/programguide/pkg/programguide"
	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

// APIError implements huma.StatusError with the domain error shape.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

var registerErrorHandler sync.Once

// RegisterErrorHandler makes huma render its own errors (bad path
// parameters, panics) in the domain error shape.
func RegisterErrorHandler() {
	registerErrorHandler.Do(func() {
		huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
			for _, err := range errs {
				var domainErr *domainerrors.Error
				if errors.As(err, &domainErr) {
					return fromDomain(domainErr)
				}
			}
			return &APIError{status: status, Code: statusToCode(status), Message: message}
		}
	})
}

func fromDomain(e *domainerrors.Error) *APIError {
	return &APIError{
		status:  e.HTTPStatus(),
		Code:    string(e.Code),
		Message: e.Message,
		Details: e.Details,
	}
}

func statusToCode(status int) string {
	switch {
	case status == http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case status == http.StatusTooManyRequests:
		return string(domainerrors.CodeRateLimited)
	case status == domainerrors.StatusClientClosedRequest:
		return string(domainerrors.CodeCanceled)
	case status >= 400 && status < 500:
		return string(domainerrors.CodeValidation)
	case status == http.StatusBadGateway, status == http.StatusGatewayTimeout:
		return string(domainerrors.CodeUpstream)
	default:
		return string(domainerrors.CodeInternal)
	}
}

// guideError classifies a program guide failure.
func (s *Server) guideError(op string, err error) error {
	var unknown *codes.UnknownIdentifierError
	var status *programguide.StatusError

	var domainErr *domainerrors.Error
	switch {
	case errors.As(err, &unknown):
		domainErr = domainerrors.ValidationWithDetails(unknown.Error(), map[string]string{
			"dimension": string(unknown.Dimension),
			"input":     unknown.Input,
		})
	case errors.Is(err, programguide.ErrMissingIdentifier), errors.Is(err, programguide.ErrInvalidDate):
		domainErr = domainerrors.Validation(err.Error())
	case errors.Is(err, programguide.ErrNotFound):
		domainErr = domainerrors.NotFound("program guide has no such entry")
	case errors.Is(err, programguide.ErrRateLimited):
		domainErr = domainerrors.RateLimited("program guide rate limit reached")
	case errors.Is(err, context.Canceled):
		domainErr = domainerrors.Wrap(err, domainerrors.CodeCanceled, "request canceled")
	case errors.As(err, &status):
		domainErr = domainerrors.Wrapf(err, domainerrors.CodeUpstream, "program guide returned %s", status.Status)
	default:
		domainErr = domainerrors.Upstream("program guide request failed")
	}

	switch domainErr.Code {
	case domainerrors.CodeUpstream:
		s.logger.Error("program guide call failed", "op", op, "error", err)
	case domainerrors.CodeCanceled:
		s.logger.Debug("program guide call canceled", "op", op, "error", err)
	}
	return fromDomain(domainErr)
}
