package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"chart_signal/internal/feature/signal/domain/entity"
)

// SignalSynthesizer はテクニカル分析とセンチメントを統合して売買シグナルのレポートを生成します。
// 推奨区分（AL/SAT/TUT/NÖTR）はプロンプト上の指示にすぎず、出力は検証しません。
type SignalSynthesizer struct {
	generator Generator
}

// NewSignalSynthesizer はSignalSynthesizerの新しいインスタンスを生成します。
func NewSignalSynthesizer(g Generator) *SignalSynthesizer {
	return &SignalSynthesizer{generator: g}
}

// Synthesize は2つの入力テキストを埋め込んだプロンプトを送信し、レポートを返します。
func (s *SignalSynthesizer) Synthesize(ctx context.Context, technical, sentiment string, ticker entity.Ticker) entity.StepResult {
	prompt := BuildSynthesisPrompt(ticker, technical, sentiment)

	text, err := s.generator.Generate(ctx, prompt, nil)
	if err != nil {
		slog.Warn("シグナル合成に失敗", "ticker", ticker, "error", err)
		return failure(fmt.Errorf("signal synthesis: %w", err))
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("シグナル合成が空", "ticker", ticker)
		return failure(ErrEmptyResponse)
	}
	return entity.StepResult{Text: text}
}
