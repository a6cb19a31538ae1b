package router

import (
	"github.com/gin-gonic/gin"

	signalhandler "chart_signal/internal/feature/signal/transport/handler"
)

// NewRouter はシングルページUI、JSON API、ヘルスチェックのルートを登録したEngineを返します。
func NewRouter(page *signalhandler.PageHandler, signal *signalhandler.SignalHandler,
	health gin.HandlerFunc, maxUploadBytes int64) *gin.Engine {
	r := gin.Default()
	// マルチパートをメモリに保持する上限（超過分は一時ファイル）
	r.MaxMultipartMemory = maxUploadBytes

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	// 画面
	r.GET("/", page.Index)
	r.POST("/", page.Analyze)

	// JSON API
	v1 := r.Group("/v1")
	{
		v1.POST("/signal", signal.Generate)
	}

	return r
}
