package programguide

import (
	"io"
	"log/slog"
)

// Option configures a Client or RadioClient.
type Option func(*settings)

type settings struct {
	domain  string
	version string
	secure  bool
	getter  Getter
	logger  *slog.Logger
}

// WithDomain overrides the API host.
func WithDomain(domain string) Option {
	return func(s *settings) {
		s.domain = domain
	}
}

// WithVersion overrides the version path segment of the v1 guide. The
// radio guide always uses v3.
func WithVersion(version string) Option {
	return func(s *settings) {
		s.version = version
	}
}

// WithSecure switches the v1 guide to https. The radio guide is always
// secure.
func WithSecure(secure bool) Option {
	return func(s *settings) {
		s.secure = secure
	}
}

// WithGetter injects the transport. The client does not close it.
func WithGetter(g Getter) Option {
	return func(s *settings) {
		s.getter = g
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func newSettings(domain, version string, secure bool, opts []Option) settings {
	s := settings{domain: domain, version: version, secure: secure}
	for _, opt := range opts {
		opt(&s)
	}
	if s.domain == "" {
		s.domain = domain
	}
	if s.version == "" {
		s.version = version
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	return s
}

// transport returns the configured getter, or a default HTTPGetter that
// the caller owns.
func (s settings) transport() (Getter, *HTTPGetter) {
	if s.getter != nil {
		return s.getter, nil
	}
	opts := DefaultHTTPGetterOptions()
	opts.Logger = s.logger
	owned := NewHTTPGetter(opts)
	return owned, owned
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
