package entity

// StepResult はパイプラインの各ステップの結果です。
//
// Text は常に表示用テキストを保持します。失敗時はエラー内容を埋め込んだ
// テキストが入り、後続ステップへはそのまま渡されます。Err で失敗を判別できます。
type StepResult struct {
	Text string
	Err  error
}

// Failed はステップが失敗したかどうかを返します。
func (r StepResult) Failed() bool {
	return r.Err != nil
}
