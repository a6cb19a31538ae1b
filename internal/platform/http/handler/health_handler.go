// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthInfo は /healthz で公開する構成情報です。秘密情報は含めません。
type HealthInfo struct {
	Model          string `json:"model"`
	SentimentCache bool   `json:"sentiment_cache"`
	ChartOCR       bool   `json:"chart_ocr"`
}

// NewHealth は /healthz エンドポイントのハンドラーを返します。
// HTTPメソッドに応じてレスポンスし、キャッシュを防止します。
func NewHealth(info HealthInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, gin.H{
				"status":          "ok",
				"model":           info.Model,
				"sentiment_cache": info.SentimentCache,
				"chart_ocr":       info.ChartOCR,
			})
		}
	}
}
