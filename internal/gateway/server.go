// Package gateway serves the message set over HTTP, transcoding between
// protobuf wire bytes and JSON, YAML or CBOR.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/ragwire/internal/config"
	"github.com/danmuck/ragwire/internal/graphrag"
	"github.com/danmuck/ragwire/internal/observability"
	"github.com/danmuck/ragwire/internal/protocol/wire"
)

// Version is reported by /health and the CLI. Overridden at link time.
var Version = "0.1.0"

type Gateway struct {
	Name     string
	Addr     string
	Appeared time.Time

	codec    *graphrag.Codec
	registry *graphrag.Registry
	pool     *wire.Pool
	limits   config.LimitsConfig
	cfg      config.GatewayConfig
	router   *gin.Engine
}

// New builds a gateway with routes registered. cfg is expected to have
// passed config.ValidateGatewayConfig.
func New(cfg config.GatewayConfig) *Gateway {
	observability.RegisterMetrics()
	pool := wire.NewPool(cfg.PoolOptions())
	if err := observability.RegisterPoolMetrics(prometheus.DefaultRegisterer, cfg.Name, pool); err != nil {
		log.Warn().Err(err).Str("gateway", cfg.Name).Msg("pool metrics not registered, this gateway's pool is unobserved")
	}
	codec := graphrag.NewCodec(pool, graphrag.WithObserver(observability.NewCodecMetrics()))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  normalizeOrigins(cfg.CorsOrigins),
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", observability.RequestIDHeader},
		ExposeHeaders: []string{observability.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	g := &Gateway{
		Name:     cfg.Name,
		Addr:     cfg.Addr,
		Appeared: time.Now(),
		codec:    codec,
		registry: graphrag.NewRegistry(codec),
		pool:     pool,
		limits:   cfg.Limits,
		cfg:      cfg,
		router:   r,
	}
	g.RegisterRoutes()
	return g
}

func (g *Gateway) HTTPRouter() *gin.Engine {
	return g.router
}

func (g *Gateway) Registry() *graphrag.Registry {
	return g.registry
}

// Serve listens on Addr until ctx is cancelled, then drains in-flight
// requests for up to five seconds.
func (g *Gateway) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              g.Addr,
		Handler:           g.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("gateway", g.Name).Str("addr", g.Addr).Msg("gateway listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Str("gateway", g.Name).Msg("gateway stopped")
	return nil
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
