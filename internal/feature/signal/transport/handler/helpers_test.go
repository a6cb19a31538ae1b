package handler_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockSignalUsecase はSignalUsecaseインターフェースのモック実装です。
type mockSignalUsecase struct {
	RunFunc  func(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage) (*entity.Report, error)
	RunCalls int
}

func (m *mockSignalUsecase) Run(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage, _ usecase.StageObserver) (*entity.Report, error) {
	m.RunCalls++
	return m.RunFunc(ctx, ticker, chart)
}

// pngBytes はテスト用の有効なPNG画像を返します。
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// createMultipartRequest はテスト用のマルチパートリクエストを生成するヘルパー関数です。
// content が nil の場合は image フィールドを付けません。
func createMultipartRequest(t *testing.T, path, ticker string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("ticker", ticker); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if content != nil {
		part, err := writer.CreateFormFile("image", "chart.png")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
			t.Fatalf("failed to copy content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, path, body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func sampleReport(ticker entity.Ticker) *entity.Report {
	return &entity.Report{
		Ticker:            ticker,
		Stage:             entity.StageComplete,
		TechnicalAnalysis: entity.StepResult{Text: "Trend yükseliş."},
		Sentiment:         entity.StepResult{Text: ""},
		Signal:            entity.StepResult{Text: "# " + ticker.String() + " Yatırım Sinyali\n\n## 🚦 GÖRÜŞ: AL"},
	}
}
