package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"portfolio/internal/carousel"
	carouselhandler "portfolio/internal/carousel/handler"
	carouselmetrics "portfolio/internal/carousel/metrics"
	chathandler "portfolio/internal/chat/handler"
	chatmetrics "portfolio/internal/chat/metrics"
	chatservice "portfolio/internal/chat/service"
	contacthandler "portfolio/internal/contact/handler"
	contactmetrics "portfolio/internal/contact/metrics"
	contactservice "portfolio/internal/contact/service"
	"portfolio/internal/content"
	"portfolio/internal/platform/config"
	"portfolio/internal/platform/httpserver"
	"portfolio/internal/platform/logger"
	"portfolio/internal/platform/metrics"
	"portfolio/internal/platform/middleware"
	redisclient "portfolio/internal/platform/redis"
	ratelimitmetrics "portfolio/internal/ratelimit/metrics"
	ratelimitmw "portfolio/internal/ratelimit/middleware"
	ratelimitmodels "portfolio/internal/ratelimit/models"
	ratelimitservice "portfolio/internal/ratelimit/service"
	"portfolio/internal/ratelimit/store/bucket"
	"portfolio/internal/site"
	"portfolio/pkg/platform/circuit"
)

// main wires dependencies, exposes the router and runs the HTTP server
// alongside the carousel autoplay loop until a signal arrives.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := metrics.NewRegistry()
	httpMetrics := metrics.New(reg)

	carouselMetrics := carouselmetrics.New(reg)
	ctrl, err := carousel.New(content.Ventures(),
		carousel.WithVisibleItems(cfg.Carousel.VisibleItems),
		carousel.WithObserver(func(t carousel.Transition) {
			carouselMetrics.ObserveTransition(t)
			log.Debug("carousel transition", "source", string(t.Source), "from", t.From, "to", t.To)
		}),
	)
	if err != nil {
		return fmt.Errorf("build carousel: %w", err)
	}
	autoplay := carousel.NewAutoplay(ctrl,
		carousel.WithInterval(cfg.Carousel.Interval),
		carousel.WithLogger(log),
	)

	redis, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		// rate limiting falls back to process-local buckets
		log.Warn("redis unavailable, using in-memory rate limits", "error", err)
	}
	if redis != nil {
		if err := redis.RegisterPoolMetrics(reg); err != nil {
			return err
		}
	}
	limiter, err := newRateLimiter(cfg, redis, reg, log)
	if err != nil {
		return err
	}

	chat, err := newChatService(ctx, cfg.Chat, reg, log)
	if err != nil {
		return err
	}
	relay := contactservice.New(cfg.Contact.AccessKey, log,
		contactservice.WithEndpoint(cfg.Contact.Endpoint),
		contactservice.WithHTTPClient(&http.Client{Timeout: cfg.Contact.Timeout}),
		contactservice.WithMetrics(contactmetrics.New(reg)),
	)
	if !relay.Configured() {
		log.Warn("contact relay has no access key; submissions will be refused")
	}

	siteOpts := []site.Option{site.WithChatOnline(!chat.Offline())}
	if redis != nil {
		siteOpts = append(siteOpts, site.WithReadinessCheck("redis", redis))
	}
	pages, err := site.New(ctrl, log, siteOpts...)
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(httpMetrics))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	pages.Register(r)
	r.Handle("/metrics", metrics.Handler(reg))
	r.Group(func(r chi.Router) {
		r.Use(limiter.RateLimit(ratelimitmodels.ClassCarousel))
		carouselhandler.New(ctrl, log).Register(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(limiter.RateLimit(ratelimitmodels.ClassChat))
		chathandler.New(chat, log).Register(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(limiter.RateLimit(ratelimitmodels.ClassContact))
		contacthandler.New(relay, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, r, httpserver.WithWriteTimeout(cfg.RequestTimeout+5*time.Second))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return autoplay.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting portfolio server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		if redis != nil {
			_ = redis.Close()
		}
		return nil
	})
	return g.Wait()
}

func newRateLimiter(cfg config.Server, redis *redisclient.Client, reg prometheus.Registerer, log *slog.Logger) (*ratelimitmw.Middleware, error) {
	window := cfg.RateLimit.Window
	limits := []ratelimitservice.Option{
		ratelimitservice.WithLimit(ratelimitmodels.ClassContact, ratelimitmodels.Limit{Requests: cfg.RateLimit.ContactLimit, Window: window}),
		ratelimitservice.WithLimit(ratelimitmodels.ClassChat, ratelimitmodels.Limit{Requests: cfg.RateLimit.ChatLimit, Window: window}),
		ratelimitservice.WithLimit(ratelimitmodels.ClassCarousel, ratelimitmodels.Limit{Requests: cfg.RateLimit.CarouselLimit, Window: window}),
	}

	local, err := ratelimitservice.New(bucket.NewInMemoryBucketStore(), limits...)
	if err != nil {
		return nil, fmt.Errorf("build in-memory limiter: %w", err)
	}

	opts := []ratelimitmw.Option{
		ratelimitmw.WithDisabled(cfg.RateLimit.Disabled),
		ratelimitmw.WithMetrics(ratelimitmetrics.New(reg)),
	}
	if redis == nil {
		return ratelimitmw.New(local, log, opts...), nil
	}

	shared, err := ratelimitservice.New(bucket.NewRedisBucketStore(redis.Client), limits...)
	if err != nil {
		return nil, fmt.Errorf("build redis limiter: %w", err)
	}
	opts = append(opts, ratelimitmw.WithFallback(local))
	return ratelimitmw.New(shared, log, opts...), nil
}

func newChatService(ctx context.Context, cfg config.ChatConfig, reg prometheus.Registerer, log *slog.Logger) (*chatservice.Service, error) {
	var generator chatservice.Generator
	if cfg.APIKey != "" {
		gemini, err := chatservice.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("build chat generator: %w", err)
		}
		generator = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set; chat assistant is offline")
	}

	return chatservice.New(generator, log,
		chatservice.WithTimeout(cfg.Timeout),
		chatservice.WithMaxMessageLength(cfg.MaxMessageLength),
		chatservice.WithMetrics(chatmetrics.New(reg)),
		chatservice.WithBreaker(circuit.New("chat",
			circuit.WithFailureThreshold(cfg.FailureThreshold),
			circuit.WithSuccessThreshold(cfg.SuccessThreshold),
			circuit.WithCooldown(cfg.BreakerCooldown),
		)),
	), nil
}
