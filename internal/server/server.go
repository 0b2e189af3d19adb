package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/phl-league-service/internal/app/admin"
	appleague "github.com/preston-bernstein/phl-league-service/internal/app/league"
	"github.com/preston-bernstein/phl-league-service/internal/config"
	httpserver "github.com/preston-bernstein/phl-league-service/internal/http"
	"github.com/preston-bernstein/phl-league-service/internal/http/handlers"
	"github.com/preston-bernstein/phl-league-service/internal/http/middleware"
	"github.com/preston-bernstein/phl-league-service/internal/logging"
	"github.com/preston-bernstein/phl-league-service/internal/metrics"
	"github.com/preston-bernstein/phl-league-service/internal/poller"
	"github.com/preston-bernstein/phl-league-service/internal/providers"
	"github.com/preston-bernstein/phl-league-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	leagueService *appleague.Service
	adminService  *admin.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

// newServerWithUpstream injects a custom upstream; its reader still gets the retry wrapper.
func newServerWithUpstream(cfg config.Config, logger *slog.Logger, up upstream) *Server {
	return newServerWithMetrics(cfg, logger, &up, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, injected *upstream, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	var up upstream
	if injected == nil {
		up = newProviderFactory(logger, recorder).build(cfg)
	} else {
		up = *injected
		up.reader = providers.NewRetryingProvider(up.reader, logger, recorder, normalizeProviderName(cfg.Provider, up.reader), 0, 0)
	}

	memoryStore := store.NewMemoryStore()
	snaps := buildSnapshots(cfg)
	snaps.restoreLatest(memoryStore, logger)

	plr := poller.New(up.reader, memoryStore, snaps.pollerWriter(), logger, recorder, cfg.PollInterval)
	leagueSvc := appleague.NewService(memoryStore)
	var adminSvc *admin.Service
	if up.writer != nil {
		adminSvc = admin.NewService(up.writer, plr, logger, recorder)
	}
	httpSrv := buildHTTPServer(cfg, leagueSvc, adminSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		leagueService: leagueSvc,
		adminService:  adminSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, leagueSvc *appleague.Service, adminSvc *admin.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(leagueSvc, logger, statusFn)
	var adminHandler *handlers.AdminHandler
	if adminSvc != nil {
		adminHandler = handlers.NewAdminHandler(adminSvc, logger, cfg.HTTP.UploadMaxBytes)
	} else {
		logging.Info(logger, "admin routes disabled", slog.String(logging.FieldProvider, cfg.Provider))
	}
	router := httpserver.NewRouter(handler, adminHandler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.CORS(cfg.HTTP.AllowedOrigins, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
