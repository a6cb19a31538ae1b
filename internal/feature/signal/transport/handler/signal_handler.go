// Package handler はsignalフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/transport/http/dto"
	"chart_signal/internal/feature/signal/usecase"
)

// SignalUsecase はシグナル生成パイプラインのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SignalUsecase interface {
	Run(ctx context.Context, ticker entity.Ticker, chart *entity.ChartImage, observe usecase.StageObserver) (*entity.Report, error)
}

// SignalHandler はシグナル生成のJSON APIリクエストを処理します。
type SignalHandler struct {
	uc             SignalUsecase
	maxUploadBytes int64
}

// NewSignalHandler はSignalHandlerの新しいインスタンスを生成します。
func NewSignalHandler(uc SignalUsecase, maxUploadBytes int64) *SignalHandler {
	return &SignalHandler{uc: uc, maxUploadBytes: maxUploadBytes}
}

// Generate はチャート画像と銘柄コードからシグナルレポートを生成します。
//
// エンドポイント: POST /v1/signal
// Content-Type: multipart/form-data
// フィールド: ticker（銘柄コード）, image（JPEG/PNG画像）
//
// 各ステップの失敗は 200 のまま ok=false で返します。
func (h *SignalHandler) Generate(c *gin.Context) {
	ticker, chart, err := readInputs(c, h.maxUploadBytes)
	if err != nil {
		ie := asInputError(err)
		slog.Warn("シグナル生成の入力が不足", "error", err, "remote_addr", c.ClientIP())
		c.JSON(ie.status, dto.ErrorResponse{Error: ie.message})
		return
	}

	report, err := h.uc.Run(c.Request.Context(), ticker, chart, nil)
	if err != nil {
		ie := asInputError(err)
		c.JSON(ie.status, dto.ErrorResponse{Error: ie.message})
		return
	}

	c.JSON(http.StatusOK, toResponse(report))
}

func toResponse(r *entity.Report) dto.SignalResponse {
	return dto.SignalResponse{
		Ticker:            r.Ticker.String(),
		Stage:             r.Stage.String(),
		Degraded:          r.Degraded(),
		TechnicalAnalysis: toStep(r.TechnicalAnalysis),
		Sentiment:         toStep(r.Sentiment),
		Signal:            toStep(r.Signal),
	}
}

func toStep(s entity.StepResult) dto.StepResponse {
	out := dto.StepResponse{Text: s.Text, OK: !s.Failed()}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	return out
}
