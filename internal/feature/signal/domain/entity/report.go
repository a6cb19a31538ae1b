package entity

// Report は1回のパイプライン実行の成果物です。リクエストスコープでのみ存在します。
type Report struct {
	Ticker            Ticker
	Stage             Stage
	TechnicalAnalysis StepResult
	Sentiment         StepResult
	Signal            StepResult
}

// Degraded はいずれかのステップが失敗したかどうかを返します。
func (r *Report) Degraded() bool {
	return r.TechnicalAnalysis.Failed() || r.Sentiment.Failed() || r.Signal.Failed()
}
