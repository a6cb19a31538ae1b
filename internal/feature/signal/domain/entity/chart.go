package entity

// ChartImage はユーザーがアップロードしたチャート画像です。
// 中身は解釈せず、そのまま生成モデルへ渡します。
type ChartImage struct {
	Data     []byte // 画像のバイト列
	MIMEType string // image/jpeg または image/png
	Width    int    // デコード済みヘッダーから得た幅
	Height   int    // デコード済みヘッダーから得た高さ
}

// IsEmpty は画像データが存在しないかどうかを返します。
func (c *ChartImage) IsEmpty() bool {
	return c == nil || len(c.Data) == 0
}
