// Package gemini はGoogle Gemini APIを使用したテキスト生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-flash-latest"
)

// Config はGeminiクライアントの設定です。
type Config struct {
	APIKey      string // Gemini APIキー（Vertex AI使用時は不要）
	Model       string // 使用するモデル名
	UseVertexAI bool   // trueの場合ADCとVertex AIを使用
	BaseURL     string // APIのベースURL（テスト用、空ならデフォルト）
}

// Generator はGoogle Gemini APIを使用してテキストを生成します。
type Generator struct {
	client *genai.Client
	model  string
}

// GeneratorがGeneratorインターフェースを実装していることをコンパイル時に検証します。
var _ usecase.Generator = (*Generator)(nil)

// NewGenerator は設定値からGeneratorの新しいインスタンスを生成します。
// UseVertexAI の場合、GOOGLE_CLOUD_PROJECT と GOOGLE_CLOUD_LOCATION が必要です。
func NewGenerator(ctx context.Context, cfg Config, httpClient *http.Client) (*Generator, error) {
	cc := &genai.ClientConfig{
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	}
	if cfg.UseVertexAI {
		cc.Backend = genai.BackendVertexAI
	} else {
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}, nil
}

// Model は使用中のモデル名を返します。
func (g *Generator) Model() string {
	return g.model
}

// Generate はプロンプトと任意のチャート画像を送信し、生成テキストを返します。
func (g *Generator) Generate(ctx context.Context, prompt string, chart *entity.ChartImage) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if !chart.IsEmpty() {
		parts = append(parts, genai.NewPartFromBytes(chart.Data, chart.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
