// Package entity はsignalフィーチャーのドメインモデルを定義します。
package entity

import "strings"

// Ticker は分析対象の銘柄コード（例: THYAO, BTCUSDT）です。
// 形式の検証は行わず、プロンプトと検索クエリへの埋め込みにのみ使用します。
type Ticker string

// NewTicker は入力値の前後の空白を除去し、大文字に正規化したTickerを返します。
func NewTicker(raw string) Ticker {
	return Ticker(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsZero は銘柄コードが空かどうかを返します。
func (t Ticker) IsZero() bool {
	return t == ""
}

func (t Ticker) String() string {
	return string(t)
}
