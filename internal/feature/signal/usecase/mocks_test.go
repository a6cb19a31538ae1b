package usecase_test

import (
	"context"
	"errors"

	"chart_signal/internal/feature/signal/domain/entity"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// generateCall はmockGeneratorが受け取った引数を記録します。
type generateCall struct {
	Prompt string
	Chart  *entity.ChartImage
}

// mockGenerator はGeneratorインターフェースのモック実装です。
type mockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string, chart *entity.ChartImage) (string, error)
	Calls        []generateCall
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string, chart *entity.ChartImage) (string, error) {
	m.Calls = append(m.Calls, generateCall{Prompt: prompt, Chart: chart})
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, chart)
	}
	return "", errors.New("GenerateFunc is not implemented")
}

// mockSearcher はSearcherインターフェースのモック実装です。
type mockSearcher struct {
	SearchFunc  func(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error)
	SearchCalls int
	LastQuery   string
	LastMax     int
}

func (m *mockSearcher) Search(ctx context.Context, query string, maxResults int) ([]entity.SearchResult, error) {
	m.SearchCalls++
	m.LastQuery = query
	m.LastMax = maxResults
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, maxResults)
	}
	return nil, nil
}

// mockChartTextReader はChartTextReaderインターフェースのモック実装です。
type mockChartTextReader struct {
	ReadTextFunc  func(ctx context.Context, imageData []byte) (string, error)
	ReadTextCalls int
}

func (m *mockChartTextReader) ReadText(ctx context.Context, imageData []byte) (string, error) {
	m.ReadTextCalls++
	if m.ReadTextFunc != nil {
		return m.ReadTextFunc(ctx, imageData)
	}
	return "", nil
}

func testChart() *entity.ChartImage {
	return &entity.ChartImage{Data: []byte("fake-png"), MIMEType: "image/png", Width: 10, Height: 10}
}
