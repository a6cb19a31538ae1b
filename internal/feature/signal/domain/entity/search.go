package entity

// SearchResult はWeb検索結果の1件を表します。
type SearchResult struct {
	Title string // 検索結果のタイトル
	Body  string // スニペット本文
	URL   string // リンク先（ダイジェストには含めない）
}
