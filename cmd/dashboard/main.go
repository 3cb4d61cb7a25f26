package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/marketpanel/pkg/dashboard"
	"github.com/marketpanel/pkg/service"
	"github.com/marketpanel/pkg/terminal"
)

var serviceVersion = "dev"

type configuration struct {
	ProxyURL    string `envconfig:"PROXY_URL" default:"http://localhost:8080/api/finnhub-proxy"`
	ConfigPath  string `envconfig:"DASHBOARD_CONFIG"`
	Title       string `envconfig:"DASHBOARD_TITLE" default:"Markets"`
	Columns     int    `envconfig:"DASHBOARD_COLUMNS" default:"4"`
	ChartWidth  int    `envconfig:"CHART_WIDTH" default:"24"`
	ChartHeight int    `envconfig:"CHART_HEIGHT" default:"6"`
	LogFile     string `envconfig:"LOG_FILE" default:"dashboard.log"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "dashboard registry (yaml), overrides DASHBOARD_CONFIG")
	once := flag.Bool("once", false, "run a single refresh pass and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(serviceVersion)
		os.Exit(0)
	}

	// Stdout belongs to the board; logs go to a file unless it cannot be opened.
	logOut := os.Stderr
	_ = godotenv.Load()

	var cfg configuration
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	if !*once && cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			defer f.Close()
			logOut = f
		}
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(logOut))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	_ = level.Info(logger).Log("msg", "initializing", "version", serviceVersion)

	if *configPath != "" {
		cfg.ConfigPath = *configPath
	}
	dashCfg, err := dashboard.LoadConfig(cfg.ConfigPath)
	if err != nil {
		_ = level.Error(logger).Log("msg", "failed to load dashboard config", "path", cfg.ConfigPath, "err", err)
		os.Exit(1)
	}

	proxyHost, err := service.NewHostClient(cfg.ProxyURL)
	if err != nil {
		_ = level.Error(logger).Log("msg", "invalid proxy url", "err", err)
		os.Exit(1)
	}
	proxy := service.NewClient(
		proxyHost,
		service.NewQuoteClientTransport(
			service.NewErrorProcessor(http.StatusInternalServerError, "internal"),
			service.NewError,
			strings.TrimRight(cfg.ProxyURL, "/"),
			http.MethodGet,
		),
	)

	opts := []terminal.Option{
		terminal.WithColumns(cfg.Columns),
		terminal.WithChartSize(cfg.ChartWidth, cfg.ChartHeight),
	}
	if !*once {
		opts = append(opts, terminal.WithClearScreen())
	}
	board := terminal.NewBoard(os.Stdout, cfg.Title, dashCfg.Symbols, opts...)

	poller := dashboard.New(dashCfg, proxy, board, log.With(logger, "component", "dashboard"))

	if *once {
		res := poller.RunOnce(context.Background())
		if res.Updated == 0 && res.Symbols > 0 {
			os.Exit(1)
		}
		return
	}

	if err := poller.Start(context.Background()); err != nil {
		_ = level.Error(logger).Log("msg", "failed to start poller", "err", err)
		os.Exit(1)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)

	sig := <-c
	_ = level.Info(logger).Log("msg", "received signal, exiting", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := poller.Stop(ctx); err != nil {
		_ = level.Error(logger).Log("msg", "poller shutdown failure", "err", err)
	}
	_ = level.Info(logger).Log("msg", "goodbye")
}
