// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"chart_signal/internal/feature/signal/adapters/duckduckgo"
	"chart_signal/internal/feature/signal/adapters/gemini"
	"chart_signal/internal/feature/signal/adapters/vision"
	"chart_signal/internal/feature/signal/usecase"
	"chart_signal/internal/platform/cache"
	"chart_signal/internal/platform/config"
	infrahttp "chart_signal/internal/platform/http"
	healthhandler "chart_signal/internal/platform/http/handler"
)

// SignalComponents holds the wired pipeline and the pieces callers need besides it.
type SignalComponents struct {
	Pipeline *usecase.Pipeline
	Searcher *cache.CachingSearcher
	Health   healthhandler.HealthInfo
	closers  []func() error
}

// Close releases clients opened while wiring.
func (s *SignalComponents) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewSignalComponents wires the generator, searcher and optional OCR reader into a Pipeline.
// rdb may be nil, in which case search results are not cached.
func NewSignalComponents(ctx context.Context, cfg config.Config, rdb *redis.Client) (*SignalComponents, error) {
	gen, err := gemini.NewGenerator(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		UseVertexAI: cfg.Gemini.UseVertexAI,
	}, infrahttp.NewHTTPClient(0, ""))
	if err != nil {
		return nil, err
	}

	ddg := duckduckgo.NewSearcher(duckduckgo.Config{
		BaseURL: cfg.Search.BaseURL,
		Region:  cfg.Search.Region,
		Timeout: cfg.Search.Timeout,
	}, infrahttp.NewHTTPClient(cfg.Search.Timeout, infrahttp.DefaultUserAgent))
	searcher := cache.NewCachingSearcher(rdb, cfg.Redis.SentimentTTL, ddg, "sentiment")

	comps := &SignalComponents{
		Searcher: searcher,
		Health: healthhandler.HealthInfo{
			Model:          gen.Model(),
			SentimentCache: rdb != nil,
		},
	}

	var reader usecase.ChartTextReader
	if cfg.Vision.Enabled {
		tr, err := vision.NewTextReader(ctx)
		if err != nil {
			return nil, fmt.Errorf("chart OCR enabled but unavailable: %w", err)
		}
		reader = tr
		comps.closers = append(comps.closers, tr.Close)
		comps.Health.ChartOCR = true
		slog.Info("Chart OCR enabled")
	}

	comps.Pipeline = usecase.NewPipeline(
		usecase.NewChartAnalyzer(gen, reader),
		usecase.NewSentimentFetcher(searcher),
		usecase.NewSignalSynthesizer(gen),
	)
	return comps, nil
}
