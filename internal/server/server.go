package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-career-sim/internal/app/careers"
	"github.com/preston-bernstein/football-career-sim/internal/config"
	httpserver "github.com/preston-bernstein/football-career-sim/internal/http"
	"github.com/preston-bernstein/football-career-sim/internal/http/handlers"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/metrics"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	careers       *careers.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closeStore    func() error
}

// New wires the configured store, save files and telemetry into a server.
// Careers saved on disk but missing from the store are restored.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	stores, err := newStoreFactory(logger, recorder).build(ctx, cfg.Store)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}

	svc := buildCareers(cfg, stores, buildSaves(cfg.Saves), recorder, logger)
	restored, err := svc.Restore(ctx)
	if err != nil {
		_ = stores.close()
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, fmt.Errorf("restore careers: %w", err)
	}
	if restored > 0 {
		logging.Info(logger, "careers restored from saves", logging.FieldCount, restored)
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		careers:       svc,
		httpServer:    buildHTTPServer(cfg, svc, stores.ready, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		closeStore:    stores.close,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
	}
}

func buildCareers(cfg config.Config, stores storeComponents, saves saveComponents, recorder *metrics.Recorder, logger *slog.Logger) *careers.Service {
	opts := careers.Options{
		Recorder:  recorder,
		Logger:    logger,
		Seed:      cfg.Sim.Seed,
		StartYear: cfg.Sim.StartYear,
	}
	if saves.writer != nil {
		opts.Writer = saves.writer
		opts.Reader = saves.reader
	}
	return careers.NewService(stores.store, roster.Fixture(), opts)
}

func buildHTTPServer(cfg config.Config, svc *careers.Service, ready handlers.ReadyFunc, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	rcfg := httpserver.RouterConfig{
		Handler:     handlers.NewHandler(svc, ready, logger),
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
		Timeout:     cfg.RequestTimeout,
	}
	if cfg.AdminToken != "" {
		rcfg.Admin = handlers.NewAdminHandler(svc, cfg.AdminToken, logger)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpserver.NewRouter(rcfg),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout(cfg.RequestTimeout),
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

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

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

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

	if s.closeStore != nil {
		if err := s.closeStore(); err != nil {
			logging.Warn(s.logger, "career store close failed", "error", err)
		}
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

	path := cfg.Metrics.Path
	if path == "" {
		path = "/metrics"
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle(path, handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
