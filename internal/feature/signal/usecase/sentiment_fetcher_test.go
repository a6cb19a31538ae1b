package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
)

func TestSentimentFetcher_Fetch(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFunc func(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error)
		wantText string
		wantErr  error
	}{
		{
			name: "success: results joined with blank line",
			mockFunc: func(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
				return []entity.SearchResult{
					{Title: "THY rekor kırdı", Body: "Yolcu sayısı arttı."},
					{Title: "Analist yorumu", Body: "Hedef fiyat yükseltildi."},
				}, nil
			},
			wantText: "- THY rekor kırdı: Yolcu sayısı arttı.\n\n- Analist yorumu: Hedef fiyat yükseltildi.",
		},
		{
			name: "success: zero results yields empty digest",
			mockFunc: func(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
				return nil, nil
			},
			wantText: "",
		},
		{
			name: "failure: search error becomes display text",
			mockFunc: func(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
				return nil, ErrAPI
			},
			wantErr: ErrAPI,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &mockSearcher{SearchFunc: tc.mockFunc}
			f := usecase.NewSentimentFetcher(s)

			res := f.Fetch(ctx, "THYAO")

			if s.LastQuery != "THYAO hisse yorum haber son dakika" {
				t.Errorf("unexpected query %q", s.LastQuery)
			}
			if s.LastMax != usecase.MaxSearchResults {
				t.Errorf("expected max results %d, got %d", usecase.MaxSearchResults, s.LastMax)
			}

			if tc.wantErr != nil {
				if !errors.Is(res.Err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, res.Err)
				}
				if !strings.HasPrefix(res.Text, usecase.FailurePrefix) {
					t.Errorf("expected failure marker, got %q", res.Text)
				}
				return
			}
			if res.Failed() {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			if res.Text != tc.wantText {
				t.Errorf("digest mismatch:\ngot  %q\nwant %q", res.Text, tc.wantText)
			}
		})
	}
}

func TestBuildDigest_CapsAtFiveEntries(t *testing.T) {
	results := make([]entity.SearchResult, 8)
	for i := range results {
		results[i] = entity.SearchResult{Title: fmt.Sprintf("t%d", i), Body: fmt.Sprintf("b%d", i)}
	}

	digest := usecase.BuildDigest(results)
	entries := strings.Split(digest, "\n\n")

	if len(entries) != usecase.MaxSearchResults {
		t.Fatalf("expected %d entries, got %d", usecase.MaxSearchResults, len(entries))
	}
	for i, e := range entries {
		want := fmt.Sprintf("- t%d: b%d", i, i)
		if e != want {
			t.Errorf("entry %d: got %q, want %q", i, e, want)
		}
	}
}
