// Package duckduckgo はDuckDuckGoのHTMLエンドポイントを使ったWeb検索クライアントを提供します。
package duckduckgo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
)

// Config はDuckDuckGo検索クライアントの設定です。
type Config struct {
	BaseURL string        // 例: "https://html.duckduckgo.com"
	Region  string        // 検索リージョン（例: "tr-tr"）
	Timeout time.Duration // HTTPリクエストのタイムアウト
}

// Searcher はDuckDuckGoのHTML版検索結果をスクレイピングします。
type Searcher struct {
	cfg    Config
	client *http.Client
}

// SearcherがSearcherインターフェースを実装していることをコンパイル時に検証します。
var _ usecase.Searcher = (*Searcher)(nil)

// NewSearcher は指定された設定とHTTPクライアントでSearcherの新しいインスタンスを生成します。
func NewSearcher(cfg Config, client *http.Client) *Searcher {
	return &Searcher{cfg: cfg, client: client}
}

// Search はクエリで検索し、上位 maxResults 件を検索順位のまま返します。広告枠は除外します。
func (s *Searcher) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	form := url.Values{}
	form.Set("q", query)
	if s.cfg.Region != "" {
		form.Set("kl", s.cfg.Region)
	}

	u := strings.TrimRight(s.cfg.BaseURL, "/") + "/html/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", strings.TrimRight(s.cfg.BaseURL, "/")+"/")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse duckduckgo html: %w", err)
	}

	return parseResults(doc, maxResults), nil
}

// parseResults は検索結果ページから結果を抽出します。
func parseResults(doc *goquery.Document, maxResults int) []entity.SearchResult {
	results := make([]entity.SearchResult, 0, maxResults)
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}
		if sel.HasClass("result--ad") {
			return true
		}

		link := sel.Find("a.result__a").First()
		title := collapse(link.Text())
		if title == "" {
			return true
		}
		href, _ := link.Attr("href")

		results = append(results, entity.SearchResult{
			Title: title,
			Body:  collapse(sel.Find(".result__snippet").First().Text()),
			URL:   resolveLink(href),
		})
		return true
	})
	return results
}

// collapse は連続する空白を1つにまとめます。
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolveLink はDuckDuckGoのリダイレクトURL（/l/?uddg=...）から遷移先を取り出します。
func resolveLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
