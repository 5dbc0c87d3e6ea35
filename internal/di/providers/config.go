// Package providers contains dependency injection providers for the
// program guide.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/programguide/internal/config"
	"github.com/listenupapp/programguide/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	overrides := do.MustInvoke[config.Overrides](i)
	return config.Load(overrides)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	out := do.MustInvoke[LogOutput](i)

	log := logger.New(logger.Config{
		Writer:      out.Writer,
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development" && cfg.Logger.Level == "debug",
		Environment: cfg.App.Environment,
	})

	log.Debug("configuration loaded",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"domain", cfg.Guide.Domain,
		"version", cfg.Guide.Version,
		"secure", cfg.Guide.Secure,
		"radio_domain", cfg.Guide.RadioDomain,
	)

	return log, nil
}
