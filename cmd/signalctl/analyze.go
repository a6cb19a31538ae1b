package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"chart_signal/internal/app/di"
	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
	"chart_signal/internal/platform/config"
	"chart_signal/internal/platform/imageinput"
	infraredis "chart_signal/internal/platform/redis"
)

// analyzeOptions は analyze コマンドのフラグです。
type analyzeOptions struct {
	ticker      string
	chartPath   string
	fresh       bool
	jsonOut     bool
	apiKeyStdin bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze --ticker <symbol> --chart <file>",
		Short: "Grafik görselini analiz edip AL/SAT sinyali üretir",
		Long: `Runs the three-step pipeline once:
- technical analysis of the chart image with Gemini
- recent news digest from web search
- synthesis into a BUY/SELL/HOLD/NEUTRAL report with targets and stop-loss`,
		Example: `  signalctl analyze --ticker THYAO --chart thyao.png
  echo "$KEY" | signalctl analyze --ticker BTCUSDT --chart btc.jpg --api-key-stdin --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&opts.ticker, "ticker", "t", "", "ticker symbol, e.g. THYAO")
	cmd.Flags().StringVarP(&opts.chartPath, "chart", "c", "", "chart screenshot (JPEG or PNG)")
	cmd.Flags().BoolVar(&opts.fresh, "fresh", false, "drop cached search results for the ticker first")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.apiKeyStdin, "api-key-stdin", false, "read the Gemini API key from stdin")
	return cmd
}

func runAnalyze(ctx context.Context, opts *analyzeOptions, in io.Reader, out, errOut io.Writer) error {
	cfg := config.Load()

	var prompter config.SecretPrompter = config.NewTerminalPrompter()
	if opts.apiKeyStdin {
		prompter = config.ReaderPrompter{R: in}
	}
	if err := config.ResolveCredential(&cfg.Gemini, prompter); err != nil {
		_, _ = fmt.Fprintln(errOut, config.MissingCredentialMessage)
		return err
	}

	ticker := entity.NewTicker(opts.ticker)
	chart, err := loadChart(opts.chartPath, cfg.Server.MaxUploadBytes)
	if err != nil {
		return err
	}

	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without sentiment cache.")
		} else {
			rdb = tmp
			defer func() { _ = rdb.Close() }()
		}
	}

	comps, err := di.NewSignalComponents(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer func() { _ = comps.Close() }()

	if opts.fresh && !ticker.IsZero() {
		if err := comps.Searcher.Invalidate(ctx, usecase.BuildSearchQuery(ticker)); err != nil {
			slog.Warn("failed to drop cached search results", "error", err)
		}
	}

	report, err := comps.Pipeline.Run(ctx, ticker, chart, progressPrinter(errOut))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTickerRequired):
			_, _ = fmt.Fprintln(errOut, "Lütfen bir hisse sembolü girin.")
		case errors.Is(err, usecase.ErrChartRequired):
			_, _ = fmt.Fprintln(errOut, "Lütfen bir grafik görseli yükleyin.")
		}
		return err
	}

	if opts.jsonOut {
		return writeJSON(out, report)
	}
	return writeText(out, report)
}

// loadChart はファイルを読み込んで検査します。パスが空なら nil を返し、パイプライン側で警告します。
func loadChart(path string, maxBytes int64) (*entity.ChartImage, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart: %w", err)
	}
	chart, err := imageinput.Decode(data, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", path, err)
	}
	return chart, nil
}

// progressMessage は処理中ステップの表示文言を返します。
func progressMessage(r *entity.Report) string {
	switch r.Stage {
	case entity.StageChartAnalysisPending:
		return fmt.Sprintf("%s grafiği inceleniyor...", r.Ticker)
	case entity.StageSentimentPending:
		return fmt.Sprintf("%s için piyasa haberleri taranıyor...", r.Ticker)
	case entity.StageSynthesisPending:
		return "Veriler birleştirilip final sinyali üretiliyor..."
	}
	return ""
}

func progressPrinter(w io.Writer) usecase.StageObserver {
	return func(r *entity.Report) {
		if msg := progressMessage(r); msg != "" {
			_, _ = fmt.Fprintln(w, "⏳ "+msg)
		}
	}
}

func writeText(w io.Writer, r *entity.Report) error {
	var b strings.Builder
	b.WriteString("🔍 Detaylı Teknik Analiz (Gemini Vision)\n\n")
	b.WriteString(r.TechnicalAnalysis.Text)
	b.WriteString("\n\n📰 Piyasa Haberleri ve Sentiment\n\n")
	b.WriteString(r.Sentiment.Text)
	b.WriteString("\n\n---\n\n")
	b.WriteString(r.Signal.Text)
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonStep struct {
	Text string `json:"text"`
	OK   bool   `json:"ok"`
}

func writeJSON(w io.Writer, r *entity.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(struct {
		Ticker            string   `json:"ticker"`
		Stage             string   `json:"stage"`
		TechnicalAnalysis jsonStep `json:"technical_analysis"`
		Sentiment         jsonStep `json:"sentiment"`
		Signal            jsonStep `json:"signal"`
	}{
		Ticker:            r.Ticker.String(),
		Stage:             r.Stage.String(),
		TechnicalAnalysis: jsonStep{Text: r.TechnicalAnalysis.Text, OK: !r.TechnicalAnalysis.Failed()},
		Sentiment:         jsonStep{Text: r.Sentiment.Text, OK: !r.Sentiment.Failed()},
		Signal:            jsonStep{Text: r.Signal.Text, OK: !r.Signal.Failed()},
	})
}
