package providers

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/listenupapp/programguide/internal/api"
	"github.com/listenupapp/programguide/internal/config"
	"github.com/listenupapp/programguide/internal/logger"
	"github.com/listenupapp/programguide/pkg/programguide"
)

// GatewayHandle wraps the gateway router with Shutdownable.
type GatewayHandle struct {
	*api.Server
}

// Shutdown implements do.Shutdownable.
func (h *GatewayHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideGateway provides the gateway router.
func ProvideGateway(i do.Injector) (*GatewayHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	guide, err := do.Invoke[*programguide.Client](i)
	if err != nil {
		return nil, err
	}
	radio, err := do.Invoke[*programguide.RadioClient](i)
	if err != nil {
		return nil, err
	}
	search, err := do.Invoke[*CodeSearchHandle](i)
	if err != nil {
		return nil, err
	}

	server := api.NewServer(guide, radio, search.Index, api.Options{
		AllowedOrigins:    cfg.Gateway.AllowedOrigins,
		RequestsPerSecond: cfg.Gateway.RequestsPerSecond,
		Burst:             cfg.Gateway.Burst,
	}, log.Logger)

	return &GatewayHandle{Server: server}, nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	// BoundAddr is the listening address, useful when the port is 0.
	BoundAddr string
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer binds the gateway port and serves in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	gateway, err := do.Invoke[*GatewayHandle](i)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Gateway.Port,
		Handler:      gateway,
		ReadTimeout:  cfg.Gateway.ReadTimeout,
		WriteTimeout: cfg.Gateway.WriteTimeout,
		IdleTimeout:  cfg.Gateway.IdleTimeout,
	}

	// Bind first so a busy port fails the bootstrap instead of a goroutine.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, err
	}

	go func() {
		log.Info("HTTP server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("HTTP server error")
		}
	}()

	return &HTTPServerHandle{Server: srv, BoundAddr: ln.Addr().String()}, nil
}
