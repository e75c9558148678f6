// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tanxh33/visualise-dijkstra/config"
	"github.com/tanxh33/visualise-dijkstra/metrics"
	"github.com/tanxh33/visualise-dijkstra/playback"
	"github.com/tanxh33/visualise-dijkstra/session"
)

// app holds what every subcommand shares.
type app struct {
	cfg       config.Config
	log       *slog.Logger
	collector *metrics.Collector
	srv       *http.Server
	closers   []io.Closer
}

// newApp loads configuration, builds the logger and, when enabled, serves
// metrics. quietStderr discards logs unless --log-file is set, for the
// full-screen TUI.
func newApp(quietStderr bool) (*app, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg}

	var w io.Writer = os.Stderr
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		w = f
	case quietStderr:
		w = io.Discard
	}
	a.log = cfg.Log.NewLogger(w)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if a.collector, err = metrics.NewCollector(reg); err != nil {
		return nil, err
	}
	if cfg.Metrics.Enabled {
		a.serveMetrics(reg)
	}

	return a, nil
}

func (a *app) serveMetrics(reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle(a.cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	a.srv = &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server failed", "addr", a.cfg.Metrics.Addr, "err", err)
		}
	}()
	a.log.Info("serving metrics", "addr", a.cfg.Metrics.Addr, "path", a.cfg.Metrics.Path)
}

// close stops the metrics server and closes the log file.
func (a *app) close() {
	if a.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(ctx)
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// newSession wires the session to the configured engine limits, playback
// rate and metrics. extra playback options are appended.
func (a *app) newSession(extra ...playback.Option) *session.Session {
	popts := append([]playback.Option{
		playback.WithInterval(a.cfg.PlaybackInterval()),
		playback.WithStepRecorder(a.collector),
	}, extra...)

	return session.New(
		session.WithLogger(a.log),
		session.WithRecorder(a.collector),
		session.WithPredictionRecorder(a.collector),
		session.WithMaxSnapshots(a.cfg.Engine.MaxSnapshots),
		session.WithPlayback(popts...),
	)
}
