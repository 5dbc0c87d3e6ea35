package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/programguide/internal/errors"
	"github.com/listenupapp/programguide/internal/validation"
)

type guideSettings struct {
	APIKey  string `json:"api_key" validate:"required"`
	Domain  string `json:"domain" validate:"required,hostname_rfc1123"`
	Version string `json:"version" validate:"required,guideversion"`
	Burst   int    `json:"burst" validate:"gte=1"`
}

func validSettings() guideSettings {
	return guideSettings{APIKey: "k", Domain: "api.nhk.or.jp", Version: "v1", Burst: 3}
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Validate(validSettings()))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		mutate    func(*guideSettings)
		wantField string
		wantMsg   string
	}{
		{"missing key", func(s *guideSettings) { s.APIKey = "" }, "api_key", "is required"},
		{"bad domain", func(s *guideSettings) { s.Domain = "not a host" }, "domain", "must be a valid host name"},
		{"bad version", func(s *guideSettings) { s.Version = "version1" }, "version", "must look like v1, v3"},
		{"zero burst", func(s *guideSettings) { s.Burst = 0 }, "burst", "must be greater than or equal to 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := v.Validate(s)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}

func TestValidator_Var(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Var("date", "2024-01-02", "datetime=2006-01-02"))

	err := v.Var("date", "02/01/2024", "datetime=2006-01-02")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))

	var domainErr *domainerrors.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, map[string]string{"date": "must match layout 2006-01-02"}, domainErr.Details)
}
