// Package vision はGoogle Cloud Vision APIを使用したチャート上の文字読み取りクライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"chart_signal/internal/feature/signal/usecase"
)

// TextReader はGoogle Cloud Vision APIのTEXT_DETECTIONでチャート上の文字列を読み取ります。
type TextReader struct {
	client *gvision.ImageAnnotatorClient
}

// TextReaderがChartTextReaderを実装していることをコンパイル時に検証します。
var _ usecase.ChartTextReader = (*TextReader)(nil)

// NewTextReader はADCを使用してTextReaderの新しいインスタンスを生成します。
func NewTextReader(ctx context.Context) (*TextReader, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &TextReader{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *TextReader) Close() error {
	return v.client.Close()
}

// ReadText は画像バイト列から検出された全文を返します。文字がなければ空文字列です。
func (v *TextReader) ReadText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}
	return fullText(resp)
}

// fullText はレスポンスから全文を取り出します。
// TextAnnotations の先頭要素が画像全体の文字列です。
func fullText(resp *visionpb.BatchAnnotateImagesResponse) (string, error) {
	if len(resp.GetResponses()) == 0 {
		return "", nil
	}
	r := resp.GetResponses()[0]
	if r.GetError() != nil {
		return "", fmt.Errorf("vision API error: %s", r.GetError().GetMessage())
	}
	if ft := r.GetFullTextAnnotation(); ft.GetText() != "" {
		return ft.GetText(), nil
	}
	if len(r.GetTextAnnotations()) == 0 {
		return "", nil
	}
	return r.GetTextAnnotations()[0].GetDescription(), nil
}
