package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"ebiten-gridsim/config"
	"ebiten-gridsim/data"
	"ebiten-gridsim/logger"
	"ebiten-gridsim/metrics"
	"ebiten-gridsim/network"
	"ebiten-gridsim/scenes"
)

// Number of log lines kept for the debug overlay
const overlayLogSize = 64

var (
	configPath = flag.String("config", "", "Path to a YAML config file (default $"+config.EnvConfigPath+")")
	headless   = flag.Bool("headless", false, "Run the level without a window")
	frames     = flag.Int("frames", 0, "Frames to simulate in headless mode; 0 runs until interrupted")
	logLevel   = flag.String("log-level", "", "Override the configured log level")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	messages := logger.NewMessageLog(overlayLogSize)
	logger.Log.AddHook(&logger.Hook{Log: messages, Level: logrus.InfoLevel})

	log := logger.WithComponent("main")

	registry := prometheus.NewRegistry()
	collector, err := metrics.New(registry)
	if err != nil {
		log.WithError(err).Fatal("Failed to register metrics")
	}
	stopMetrics := serveMetrics(cfg.Metrics.Addr, registry, log)
	defer stopMetrics()

	templates := data.NewTemplateManager()
	if cfg.Entity.Templates != "" {
		if err := templates.LoadTemplatesFromDirectory(cfg.Entity.Templates); err != nil {
			log.WithError(err).Warn("Failed to load agent templates")
		}
	}

	world := scenes.NewWorld(cfg, templates, network.Dial, collector)

	if *headless {
		if err := runHeadless(world, *frames); err != nil {
			log.WithError(err).Fatal("Headless run failed")
		}
		return
	}

	stack := scenes.NewStack(collector)
	stack.Push(scenes.NewMenuScene())
	game := NewGame(world, stack, messages)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(config.TPS)

	log.WithField("tps", config.TPS).Info("Starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("Game loop failed")
	}
	game.Close()
	log.Info("Stopped")
}

// serveMetrics exposes reg on addr/metrics. The returned func shuts the
// server down; with an empty addr nothing is started.
func serveMetrics(addr string, reg *prometheus.Registry, log *logrus.Entry) func() {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server failed")
		}
	}()
	log.WithField("addr", addr).Info("Serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
