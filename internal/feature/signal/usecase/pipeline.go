package usecase

import (
	"context"
	"log/slog"

	"chart_signal/internal/feature/signal/domain/entity"
)

// StageObserver はパイプラインの状態遷移を受け取るコールバックです。
// 遷移直後のレポートが渡されるため、完了したステップの結果をすぐに表示できます。
type StageObserver func(report *entity.Report)

// Pipeline はチャート分析 → センチメント取得 → シグナル合成を順番に実行します。
// 各ステップの失敗は後続ステップを止めず、実行は常に Complete に到達します。
type Pipeline struct {
	analyzer    *ChartAnalyzer
	fetcher     *SentimentFetcher
	synthesizer *SignalSynthesizer
}

// NewPipeline はPipelineの新しいインスタンスを生成します。
func NewPipeline(a *ChartAnalyzer, f *SentimentFetcher, s *SignalSynthesizer) *Pipeline {
	return &Pipeline{analyzer: a, fetcher: f, synthesizer: s}
}

// Run はパイプラインを1回実行します。
//
// 銘柄コードまたはチャート画像が欠けている場合は外部呼び出しを一切行わずに
// ErrTickerRequired / ErrChartRequired を返します。それ以外のエラーは返しません。
func (p *Pipeline) Run(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage, observe StageObserver) (*entity.Report, error) {
	if ticker.IsZero() {
		return nil, ErrTickerRequired
	}
	if chart.IsEmpty() {
		return nil, ErrChartRequired
	}

	report := &entity.Report{Ticker: ticker, Stage: entity.StageIdle}
	advance := func() {
		report.Stage = report.Stage.Next()
		slog.Info("パイプライン状態遷移", "ticker", ticker, "stage", report.Stage.String())
		if observe != nil {
			observe(report)
		}
	}

	advance()
	report.TechnicalAnalysis = p.analyzer.Analyze(ctx, chart, ticker)
	advance()

	advance()
	report.Sentiment = p.fetcher.Fetch(ctx, ticker)
	advance()

	advance()
	report.Signal = p.synthesizer.Synthesize(ctx, report.TechnicalAnalysis.Text, report.Sentiment.Text, ticker)
	advance()

	return report, nil
}
