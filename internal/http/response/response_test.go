package response

import (
	"encoding/json/v2"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/programguide/internal/errors"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"status": "healthy"}, discard())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]any{"status": "healthy"}, env.Data)
	assert.Empty(t, env.Error)
}

func TestJSON_StatusDecidesSuccess(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{399, true},
		{http.StatusBadRequest, false},
		{http.StatusBadGateway, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.status, nil, nil)
			assert.Equal(t, tt.want, decode(t, w).Success)
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		status   int
		wantCode string
	}{
		{"error", func(w http.ResponseWriter) { Error(w, http.StatusTeapot, "short and stout", nil) }, http.StatusTeapot, ""},
		{"too many", func(w http.ResponseWriter) { TooManyRequests(w, "slow down", nil) }, http.StatusTooManyRequests, "RATE_LIMITED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			assert.Equal(t, tt.status, w.Code)
			env := decode(t, w)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("domain error", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := domainerrors.ValidationWithDetails("unknown area", map[string]string{"input": "Atlantis"})
		HandleError(w, err, discard())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.Equal(t, "VALIDATION", env.Code)
		assert.Equal(t, "unknown area", env.Error)
		assert.Equal(t, map[string]any{"input": "Atlantis"}, env.Details)
	})

	t.Run("wrapped upstream", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleError(w, domainerrors.Wrap(errors.New("503"), domainerrors.CodeUpstream, "guide unavailable"), nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("unknown error hides detail", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleError(w, errors.New("secret internals"), discard())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret internals")
		assert.Equal(t, "INTERNAL", decode(t, w).Code)
	})
}
