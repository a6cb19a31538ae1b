package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/transport/handler"
	"chart_signal/internal/feature/signal/usecase"
)

func TestSignalHandler_Generate(t *testing.T) {
	png := pngBytes(t)

	tests := []struct {
		name           string
		ticker         string
		image          []byte
		maxBytes       int64
		mockFunc       func(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage) (*entity.Report, error)
		expectedStatus int
		expectedBody   string
		expectCalls    int
	}{
		{
			name:   "success: report returned",
			ticker: " thyao ",
			image:  png,
			mockFunc: func(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage) (*entity.Report, error) {
				assert.Equal(t, entity.Ticker("THYAO"), ticker)
				assert.Equal(t, "image/png", chart.MIMEType)
				return sampleReport(ticker), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"ticker":"THYAO","stage":"complete","degraded":false,
				"technical_analysis":{"text":"Trend yükseliş.","ok":true},
				"sentiment":{"text":"","ok":true},
				"signal":{"text":"# THYAO Yatırım Sinyali\n\n## 🚦 GÖRÜŞ: AL","ok":true}
			}`,
			expectCalls: 1,
		},
		{
			name:   "success: degraded step reported",
			ticker: "THYAO",
			image:  png,
			mockFunc: func(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage) (*entity.Report, error) {
				r := sampleReport(ticker)
				r.TechnicalAnalysis = entity.StepResult{Text: usecase.FailurePrefix + "quota", Err: errors.New("quota")}
				return r, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"ticker":"THYAO","stage":"complete","degraded":true,
				"technical_analysis":{"text":"Hata oluştu: quota","ok":false,"error":"quota"},
				"sentiment":{"text":"","ok":true},
				"signal":{"text":"# THYAO Yatırım Sinyali\n\n## 🚦 GÖRÜŞ: AL","ok":true}
			}`,
			expectCalls: 1,
		},
		{
			name:           "warning: empty ticker",
			ticker:         "",
			image:          png,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Lütfen bir hisse sembolü girin."}`,
		},
		{
			name:           "warning: no image",
			ticker:         "THYAO",
			image:          nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Lütfen bir grafik görseli yükleyin."}`,
		},
		{
			name:           "error: unsupported image",
			ticker:         "THYAO",
			image:          []byte("GIF89a not really"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Lütfen JPG veya PNG formatında geçerli bir grafik görseli yükleyin."}`,
		},
		{
			name:           "error: image too large",
			ticker:         "THYAO",
			image:          png,
			maxBytes:       16,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"error":"Grafik görseli çok büyük."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockSignalUsecase{RunFunc: tt.mockFunc}
			h := handler.NewSignalHandler(mockUC, tt.maxBytes)

			router := gin.New()
			router.POST("/v1/signal", h.Generate)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, createMultipartRequest(t, "/v1/signal", tt.ticker, tt.image))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectCalls, mockUC.RunCalls)
		})
	}
}
