// Package http is the storefront web delivery: HTML pages, the staff JSON API
// and the operational endpoints served by one echo instance.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"

	"storefront/config"
	"storefront/internal/delivery"
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/delivery/http/view"
	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	Metrics           *metrics.Recorder
	SessionMiddleware *httpmiddleware.SessionMiddleware
	RouterParams      router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := newEcho(params)
	if err != nil {
		return nil, err
	}

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load templates")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	// Order matters: request ids must exist before the access log is written,
	// and Identify runs last so guards on routes can read the identity.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		httpmiddleware.NewMetricsMiddleware(params.Metrics).Handle,
		echomiddleware.Secure(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
		params.SessionMiddleware.Identify,
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "storefront listening",
		slog.String("addr", addr),
		slog.String("base_url", s.cfg.HTTP.BaseURL),
	)

	// h2c lets a TLS-terminating proxy speak HTTP/2 to us in cleartext
	err := s.server.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "draining HTTP connections")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
