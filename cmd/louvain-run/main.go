package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/louvain-engine/pkg/config"
	"github.com/dd0wney/louvain-engine/pkg/logging"
	"github.com/dd0wney/louvain-engine/pkg/louvain"
	"github.com/dd0wney/louvain-engine/pkg/metrics"
	"github.com/dd0wney/louvain-engine/pkg/snapshot"
	"github.com/dd0wney/louvain-engine/pkg/store"
)

func main() {
	configPath := flag.String("config", "", "path to a louvain.yaml config file")
	edgeList := flag.String("edges", "", "path to a CSV edge list (source,target,weight)")
	snapshotOut := flag.String("snapshot", "", "path to write the result snapshot")
	databaseURL := flag.String("database-url", "", "Postgres URL for run-history persistence (optional)")
	quiet := flag.Bool("quiet", false, "skip the interactive progress display")
	flag.Parse()

	cfg := config.DefaultLouvainConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *edgeList != "" {
		cfg.GraphPath = *edgeList
	}
	if cfg.GraphPath == "" {
		fmt.Fprintln(os.Stderr, "no graph path given: pass -edges or set graph_path in -config")
		os.Exit(1)
	}

	logger := logging.DefaultLogger()
	if *configPath != "" {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}
	registry := metrics.DefaultRegistry()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, registry, logger)
	}

	g, err := loadEdgeList(cfg.GraphPath)
	if err != nil {
		logger.Error("failed to load edge list", logging.Error(err))
		os.Exit(1)
	}
	logger.Info("graph loaded", logging.Count(g.Span()))

	driver := &louvain.Driver{Logger: logger, Metrics: registry, Clock: louvain.DefaultClock}

	resultCh := make(chan runDoneMsg, 1)
	go func() {
		result, err := driver.Run(g, cfg.ToOptions())
		resultCh <- runDoneMsg{result: result, err: err}
	}()

	var result louvain.Result
	if *quiet {
		msg := <-resultCh
		result, err = msg.result, msg.err
	} else {
		p := tea.NewProgram(newRunModel(cfg.GraphPath, resultCh))
		final, runErr := p.Run()
		if runErr != nil {
			logger.Error("tui failed", logging.Error(runErr))
			os.Exit(1)
		}
		if fm, ok := final.(runModel); ok && fm.done {
			result, err = fm.result, fm.err
		} else {
			// The user detached before the run finished; wait for it so
			// the snapshot and store writes below still see a result.
			msg := <-resultCh
			result, err = msg.result, msg.err
		}
	}
	if err != nil {
		logger.Error("louvain run failed", logging.Error(err))
		os.Exit(1)
	}

	if *snapshotOut != "" {
		if err := snapshot.Save(*snapshotOut, result); err != nil {
			logger.Error("failed to write snapshot", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("snapshot written", logging.String("path", *snapshotOut))
	}

	if *databaseURL != "" {
		if err := persistRun(*databaseURL, cfg, result); err != nil {
			logger.Error("failed to persist run history", logging.Error(err))
			os.Exit(1)
		}
	}
}

func persistRun(databaseURL string, cfg config.LouvainConfig, result louvain.Result) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connecting to run-history store: %w", err)
	}
	defer s.Close()

	record := store.NewRunRecord(result.RunID, cfg.GraphPath, "static", cfg.ToOptions(), result, time.Now())
	return s.SaveRun(ctx, record)
}

func serveMetrics(addr string, registry *metrics.Registry, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	logger.Info("metrics server listening", logging.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", logging.Error(err))
	}
}
