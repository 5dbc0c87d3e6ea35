// Package di wires the program guide components together.
package di

import (
	"io"

	"github.com/samber/do/v2"

	"github.com/listenupapp/programguide/internal/config"
	"github.com/listenupapp/programguide/internal/di/providers"
	"github.com/listenupapp/programguide/internal/logger"
	"github.com/listenupapp/programguide/pkg/programguide"
)

// NewContainer creates and configures the DI container with all providers.
// Nothing is constructed until first invoked.
func NewContainer(overrides config.Overrides, logOutput io.Writer) *do.RootScope {
	injector := do.New()

	// Inputs
	do.ProvideValue(injector, overrides)
	do.ProvideValue(injector, providers.LogOutput{Writer: logOutput})

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Upstream
	do.Provide(injector, providers.ProvideTransport)
	do.Provide(injector, providers.ProvideCache)
	do.Provide(injector, providers.ProvideGuideClient)
	do.Provide(injector, providers.ProvideRadioClient)

	// Code tables
	do.Provide(injector, providers.ProvideCodeSearch)

	// Gateway
	do.Provide(injector, providers.ProvideGateway)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap constructs everything the gateway needs and starts listening.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.TransportHandle](injector)
	if _, err := do.Invoke[*providers.CacheHandle](injector); err != nil {
		return err
	}

	if _, err := do.Invoke[*programguide.Client](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*programguide.RadioClient](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.CodeSearchHandle](injector); err != nil {
		return err
	}

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
