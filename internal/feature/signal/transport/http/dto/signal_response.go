// Package dto はsignalフィーチャーのHTTPリクエスト/レスポンスDTOを定義します。
package dto

// StepResponse はパイプラインの1ステップの結果です。
type StepResponse struct {
	Text  string `json:"text"`            // 表示用テキスト（失敗時はエラー内容）
	OK    bool   `json:"ok"`              // ステップが成功したかどうか
	Error string `json:"error,omitempty"` // 失敗時のエラー内容
}

// SignalResponse はシグナル生成のレスポンスDTOです。
type SignalResponse struct {
	Ticker            string       `json:"ticker"`             // 正規化済みの銘柄コード
	Stage             string       `json:"stage"`              // 最終状態（常に complete）
	Degraded          bool         `json:"degraded"`           // いずれかのステップが失敗したか
	TechnicalAnalysis StepResponse `json:"technical_analysis"` // チャート分析
	Sentiment         StepResponse `json:"sentiment"`          // センチメントダイジェスト
	Signal            StepResponse `json:"signal"`             // 最終レポート（Markdown）
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
