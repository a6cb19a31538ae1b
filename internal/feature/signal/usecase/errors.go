// Package usecase はsignalフィーチャーのビジネスロジックを実装します。
//
// チャート分析、センチメント取得、シグナル合成の3ステップと、
// それらを順番に実行するパイプラインを提供します。
package usecase

import "errors"

var (
	// ErrTickerRequired は銘柄コードが未入力の場合に返されます。
	ErrTickerRequired = errors.New("ticker is required")

	// ErrChartRequired はチャート画像が未アップロードの場合に返されます。
	ErrChartRequired = errors.New("chart image is required")

	// ErrEmptyResponse は生成モデルが空のテキストを返した場合に使用されます。
	ErrEmptyResponse = errors.New("model returned an empty response")
)
