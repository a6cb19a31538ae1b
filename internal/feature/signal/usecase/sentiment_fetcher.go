package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"chart_signal/internal/feature/signal/domain/entity"
)

// Searcher はキーワードでWeb検索を行うインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Searcher interface {
	// Search はクエリに一致する検索結果を最大 maxResults 件返します。
	Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error)
}

// SentimentFetcher は銘柄に関する最新のWeb検索結果からダイジェストを作成します。
type SentimentFetcher struct {
	searcher Searcher
}

// NewSentimentFetcher はSentimentFetcherの新しいインスタンスを生成します。
func NewSentimentFetcher(s Searcher) *SentimentFetcher {
	return &SentimentFetcher{searcher: s}
}

// Fetch は銘柄のセンチメントダイジェストを返します。
// 検索結果が0件の場合は空文字列を返し、失敗とはみなしません。
func (f *SentimentFetcher) Fetch(ctx context.Context, ticker entity.Ticker) entity.StepResult {
	results, err := f.searcher.Search(ctx, BuildSearchQuery(ticker), MaxSearchResults)
	if err != nil {
		slog.Warn("センチメント検索に失敗", "ticker", ticker, "error", err)
		return failure(fmt.Errorf("sentiment search: %w", err))
	}
	return entity.StepResult{Text: BuildDigest(results)}
}

// BuildDigest は検索結果を "- タイトル: 本文" 形式で空行区切りに連結します。
// 順序は検索プロバイダーの順位のままで、先頭 MaxSearchResults 件のみ使用します。
func BuildDigest(results []entity.SearchResult) string {
	if len(results) > MaxSearchResults {
		results = results[:MaxSearchResults]
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s: %s", r.Title, r.Body))
	}
	return strings.Join(lines, "\n\n")
}
