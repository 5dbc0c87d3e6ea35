package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/programguide/internal/config"
	"github.com/listenupapp/programguide/internal/logger"
	"github.com/listenupapp/programguide/pkg/programguide"
)

// TransportHandle wraps the shared HTTP getter with Shutdownable.
type TransportHandle struct {
	*programguide.HTTPGetter
}

// Shutdown implements do.Shutdownable.
func (h *TransportHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideTransport provides the rate-limited HTTP getter both clients share.
func ProvideTransport(i do.Injector) (*TransportHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	opts := programguide.DefaultHTTPGetterOptions()
	opts.Timeout = cfg.Transport.Timeout
	opts.RequestsPerSecond = cfg.Transport.RequestsPerSecond
	opts.Burst = cfg.Transport.Burst
	opts.UserAgent = cfg.Transport.UserAgent
	opts.Logger = log.Logger

	return &TransportHandle{HTTPGetter: programguide.NewHTTPGetter(opts)}, nil
}

// ProvideGuideClient provides the v1 client. It fails without an API key.
func ProvideGuideClient(i do.Injector) (*programguide.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	log := do.MustInvoke[*logger.Logger](i)
	getter, err := upstream(i)
	if err != nil {
		return nil, err
	}

	return programguide.NewClient(cfg.Guide.APIKey,
		programguide.WithDomain(cfg.Guide.Domain),
		programguide.WithVersion(cfg.Guide.Version),
		programguide.WithSecure(cfg.Guide.Secure),
		programguide.WithGetter(getter),
		programguide.WithLogger(log.Logger),
	), nil
}

// ProvideRadioClient provides the v3 radio client. It fails without an API
// key.
func ProvideRadioClient(i do.Injector) (*programguide.RadioClient, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	log := do.MustInvoke[*logger.Logger](i)
	getter, err := upstream(i)
	if err != nil {
		return nil, err
	}

	return programguide.NewRadioClient(cfg.Guide.APIKey,
		programguide.WithDomain(cfg.Guide.RadioDomain),
		programguide.WithGetter(getter),
		programguide.WithLogger(log.Logger),
	), nil
}
