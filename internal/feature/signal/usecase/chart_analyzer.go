package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"chart_signal/internal/feature/signal/domain/entity"
)

// Generator はプロンプト（と任意の画像）からテキストを生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Generator interface {
	// Generate はプロンプトを送信して生成テキストを返します。chart が nil の場合はテキストのみを送信します。
	Generate(ctx context.Context, prompt string, chart *entity.ChartImage) (string, error)
}

// ChartTextReader はチャート画像上の文字列を読み取るインターフェースです。
type ChartTextReader interface {
	ReadText(ctx context.Context, imageData []byte) (string, error)
}

// ChartAnalyzer はチャート画像のテクニカル分析を生成します。
type ChartAnalyzer struct {
	generator Generator
	reader    ChartTextReader
}

// NewChartAnalyzer はChartAnalyzerの新しいインスタンスを生成します。
// reader が nil の場合、OCRによる補足は行いません。
func NewChartAnalyzer(g Generator, reader ChartTextReader) *ChartAnalyzer {
	return &ChartAnalyzer{generator: g, reader: reader}
}

// Analyze はチャート画像と銘柄コードからテクニカル分析テキストを生成します。
// 失敗してもエラーは返さず、失敗内容を埋め込んだStepResultを返します。
func (a *ChartAnalyzer) Analyze(ctx context.Context, chart *entity.ChartImage, ticker entity.Ticker) entity.StepResult {
	prompt := BuildTechnicalPrompt(ticker, a.chartText(ctx, chart))

	text, err := a.generator.Generate(ctx, prompt, chart)
	if err != nil {
		slog.Warn("チャート分析に失敗", "ticker", ticker, "error", err)
		return failure(fmt.Errorf("chart analysis: %w", err))
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("チャート分析が空", "ticker", ticker)
		return failure(ErrEmptyResponse)
	}
	return entity.StepResult{Text: text}
}

// chartText はOCR結果を返します。OCRの失敗は分析を止めません。
func (a *ChartAnalyzer) chartText(ctx context.Context, chart *entity.ChartImage) string {
	if a.reader == nil || chart.IsEmpty() {
		return ""
	}
	text, err := a.reader.ReadText(ctx, chart.Data)
	if err != nil {
		slog.Warn("チャートの文字読み取りに失敗", "error", err)
		return ""
	}
	return strings.TrimSpace(text)
}
