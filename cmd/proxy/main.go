package main

import (
	"flag"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flf2ko/fasthttp-prometheus"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/marketpanel/pkg/finnhub"
	"github.com/marketpanel/pkg/service"
)

var (
	serviceVersion = "dev"
	methodError    = []string{"method", "error"}
)

type configuration struct {
	Port               string `envconfig:"PORT" required:"true" default:"8080"`
	MaxRequestBodySize int    `envconfig:"MAX_REQUEST_BODY_SIZE" default:"1048576"` // 1 MB

	// FinnhubAPIKey may be empty; every quote request then fails with a 500.
	FinnhubAPIKey    string        `envconfig:"FINNHUB_API_KEY"`
	FinnhubURL       string        `envconfig:"FINNHUB_URL" default:"https://finnhub.io/api/v1"`
	UpstreamTimeout  time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"8s"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	CandleWindow     time.Duration `envconfig:"CANDLE_WINDOW" default:"72h"`
	CandleResolution string        `envconfig:"CANDLE_RESOLUTION" default:"60"`

	MetricsNamespace    string `envconfig:"METRICS_NAMESPACE" default:"marketpanel"`
	MetricsSubsystem    string `envconfig:"METRICS_SUBSYSTEM" default:"proxy"`
	MetricsNameCount    string `envconfig:"METRICS_NAME_COUNT" default:"request_count"`
	MetricsNameDuration string `envconfig:"METRICS_NAME_DURATION" default:"request_duration"`
	MetricsNameMisses   string `envconfig:"METRICS_NAME_MISSES" default:"candle_misses"`
	MetricsHelpCount    string `envconfig:"METRICS_HELP_COUNT" default:"Request count"`
	MetricsHelpDuration string `envconfig:"METRICS_HELP_DURATION" default:"Request duration"`
	MetricsHelpMisses   string `envconfig:"METRICS_HELP_MISSES" default:"Candle requests without a usable series"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	URIPathProxy  string `envconfig:"URI_PATH_PROXY" default:"/api/finnhub-proxy"`
	URIPathHealth string `envconfig:"URI_PATH_HEALTH" default:"/healthz"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(serviceVersion)
		os.Exit(0)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	_ = level.Info(logger).Log("msg", "initializing", "version", serviceVersion)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_ = level.Warn(logger).Log("msg", "failed to load .env", "err", err)
	}

	var cfg configuration
	if err := envconfig.Process("", &cfg); err != nil {
		_ = level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}
	if cfg.FinnhubAPIKey == "" {
		_ = level.Warn(logger).Log("msg", "FINNHUB_API_KEY is not set, quote requests will fail")
	}

	upstreamHost, err := service.NewHostClient(cfg.FinnhubURL)
	if err != nil {
		_ = level.Error(logger).Log("msg", "invalid finnhub url", "err", err)
		os.Exit(1)
	}
	upstreamHost.ReadTimeout = cfg.UpstreamTimeout
	upstreamHost.WriteTimeout = cfg.UpstreamTimeout

	upstream := finnhub.NewClient(upstreamHost, cfg.FinnhubURL,
		finnhub.WithLogger(log.With(logger, "component", "finnhub")),
		finnhub.WithMissCounter(kitprometheus.NewCounterFrom(prometheus.CounterOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      cfg.MetricsNameMisses,
			Help:      cfg.MetricsHelpMisses,
		}, nil)),
	)

	svc := service.NewService(upstream, cfg.FinnhubAPIKey,
		service.WithCandleWindow(cfg.CandleWindow),
		service.WithCandleResolution(cfg.CandleResolution),
	)

	svc = service.NewLoggingMiddleware(logger, svc)
	svc = service.NewInstrumentingMiddleware(
		kitprometheus.NewCounterFrom(prometheus.CounterOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      cfg.MetricsNameCount,
			Help:      cfg.MetricsHelpCount,
		}, methodError),
		kitprometheus.NewSummaryFrom(prometheus.SummaryOpts{
			Namespace: cfg.MetricsNamespace,
			Subsystem: cfg.MetricsSubsystem,
			Name:      cfg.MetricsNameDuration,
			Help:      cfg.MetricsHelpDuration,
		}, methodError),
		svc,
	)

	errorProcessor := service.NewErrorProcessor(http.StatusInternalServerError, "internal")
	quoteTransport := service.NewQuoteTransport(service.NewError)

	router := service.MakeFastHTTPRouter(
		[]*service.HandlerSettings{
			{
				Path:    cfg.URIPathProxy,
				Method:  http.MethodGet,
				Handler: service.NewQuoteServer(quoteTransport, svc, errorProcessor, cfg.RequestTimeout),
			},
			{
				Path:    cfg.URIPathHealth,
				Method:  http.MethodGet,
				Handler: service.NewHealthServer(),
			},
		})

	router.Handle("GET", "/debug/pprof/", fasthttpadaptor.NewFastHTTPHandlerFunc(pprof.Index))
	router.Handle("GET", "/debug/pprof/profile", fasthttpadaptor.NewFastHTTPHandlerFunc(pprof.Profile))

	p := fasthttpprometheus.NewPrometheus(cfg.MetricsSubsystem)
	fasthttpServer := &fasthttp.Server{
		Handler:            p.WrapHandler(router),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
	}

	go func() {
		_ = level.Info(logger).Log("msg", "starting http server", "port", cfg.Port, "path", cfg.URIPathProxy)
		if err := fasthttpServer.ListenAndServe(":" + cfg.Port); err != nil {
			_ = level.Error(logger).Log("msg", "server run failure", "err", err)
			os.Exit(1)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGINT)

	defer func(sig os.Signal) {
		_ = level.Info(logger).Log("msg", "received signal, exiting", "signal", sig)
		if err := fasthttpServer.Shutdown(); err != nil {
			_ = level.Error(logger).Log("msg", "server shutdown failure", "err", err)
		}

		_ = level.Info(logger).Log("msg", "goodbye")
	}(<-c)
}
