package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gridfit/gridfit/api"
	"github.com/gridfit/gridfit/config"
	"github.com/gridfit/gridfit/core/analysis"
	coremetrics "github.com/gridfit/gridfit/core/metrics"
	"github.com/gridfit/gridfit/infra/export"
	"github.com/gridfit/gridfit/infra/logger"
	"github.com/gridfit/gridfit/infra/metrics"
	"github.com/gridfit/gridfit/infra/mqtt"
)

// Service wires the analyzer, the HTTP API and the optional export and
// alerting backends from the configuration.
type Service struct {
	Analyzer *analysis.Analyzer
	Exporter *export.InfluxExporter
	Alerts   *mqtt.AlertPublisher

	cfg *config.Config
	log logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.NewWithConfig("service", cfg.Logging)

	var sinks []coremetrics.Sink
	if cfg.Metrics.Enabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	svc := &Service{
		Analyzer: analysis.New(logger.NewWithConfig("analysis", cfg.Logging), sink),
		cfg:      cfg,
		log:      logg,
	}

	if cfg.Influx.Enabled() {
		svc.Exporter = export.NewInfluxExporterWithFallback(
			cfg.Influx.URL, cfg.Influx.Token, cfg.Influx.Org, cfg.Influx.Bucket, cfg.Influx.Measurement)
		if svc.Exporter == nil {
			logg.Warnf("influx unreachable, export disabled")
		}
	}
	if cfg.MQTT.Enabled() {
		alerts, err := mqtt.NewAlertPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt alerts: %w", err)
		}
		svc.Alerts = alerts
	}
	return svc, nil
}

// Analyze runs one analysis and forwards the report to the configured
// export and alert backends.
func (s *Service) Analyze(ctx context.Context, in analysis.Input) (*analysis.Report, error) {
	rep, err := s.Analyzer.Run(in)
	if err != nil {
		return nil, err
	}
	if s.Exporter != nil {
		if err := s.Exporter.ExportReport(ctx, rep); err != nil {
			s.log.Errorf("influx export: %v", err)
		}
	}
	if s.Alerts != nil {
		if err := s.Alerts.PublishReport(rep); err != nil {
			s.log.Errorf("mqtt alerts: %v", err)
		}
	}
	return rep, nil
}

// Serve runs the HTTP API and blocks until the context is cancelled.
func (s *Service) Serve(ctx context.Context) error {
	router := api.NewRouter(s.Analyzer, s.cfg.Analysis)
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  s.cfg.Server.ReadTimeout(),
		WriteTimeout: s.cfg.Server.WriteTimeout(),
	}

	if s.cfg.Metrics.Enabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.Addr, s.cfg.Metrics.Path); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("listening on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() {
	if s.Exporter != nil {
		s.Exporter.Close()
	}
	if s.Alerts != nil {
		s.Alerts.Close()
	}
}
