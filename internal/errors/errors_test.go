package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeUpstream, http.StatusBadGateway},
		{CodeInternal, http.StatusInternalServerError},
		{CodeCanceled, StatusClientClosedRequest},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFoundf("area %q", "999"))

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := Wrap(cause, CodeUpstream, "program guide unavailable")

	assert.Equal(t, "program guide unavailable: dial tcp: refused", err.Error())
	assert.Equal(t, cause, Unwrap(err))
	assert.True(t, Is(err, ErrUpstream))
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus())
}

func TestWithDetails(t *testing.T) {
	base := Validation("bad input")
	detailed := base.WithDetails(map[string]string{"area": "unknown"})

	assert.Nil(t, base.Details)
	assert.Equal(t, map[string]string{"area": "unknown"}, detailed.Details)
	assert.Equal(t, "bad input", Validationf("bad %s", "input").Message)
}
