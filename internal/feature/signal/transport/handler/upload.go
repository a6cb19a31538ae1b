package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/usecase"
	"chart_signal/internal/platform/imageinput"
)

// ユーザーに表示するメッセージです。
const (
	MsgTickerRequired   = "Lütfen bir hisse sembolü girin."
	MsgChartRequired    = "Lütfen bir grafik görseli yükleyin."
	MsgUnsupportedImage = "Lütfen JPG veya PNG formatında geçerli bir grafik görseli yükleyin."
	MsgImageTooLarge    = "Grafik görseli çok büyük."
	MsgUploadFailed     = "Görsel okunamadı."
)

// inputError は入力不足などでパイプラインを開始できない場合のエラーです。
type inputError struct {
	status  int
	message string
	err     error
}

func (e *inputError) Error() string { return e.message }
func (e *inputError) Unwrap() error { return e.err }

// readTicker はフォームの銘柄コードを正規化して返します。
func readTicker(c *gin.Context) entity.Ticker {
	return entity.NewTicker(c.PostForm("ticker"))
}

// readChart はフォームの image フィールドを読み取り、検査済みのチャート画像を返します。
// ファイルが無い場合は (nil, nil) を返します。
func readChart(c *gin.Context, maxBytes int64) (*entity.ChartImage, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		return nil, &inputError{status: http.StatusInternalServerError, message: MsgUploadFailed, err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	// 上限+1バイトまで読み、超過を検出する
	r := io.Reader(f)
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		return nil, &inputError{status: http.StatusInternalServerError, message: MsgUploadFailed, err: err}
	}
	if len(data) == 0 {
		return nil, nil
	}

	chart, err := imageinput.Decode(data, maxBytes)
	switch {
	case err == nil:
		return chart, nil
	case errors.Is(err, imageinput.ErrImageTooLarge):
		return nil, &inputError{status: http.StatusRequestEntityTooLarge, message: MsgImageTooLarge, err: err}
	default:
		slog.Warn("画像の検査に失敗", "error", err, "filename", file.Filename)
		return nil, &inputError{status: http.StatusBadRequest, message: MsgUnsupportedImage, err: err}
	}
}

// readInputs は銘柄コードとチャート画像を読み取り、欠けていれば警告用のエラーを返します。
// 銘柄コードの確認を画像より先に行います。
func readInputs(c *gin.Context, maxBytes int64) (entity.Ticker, *entity.ChartImage, error) {
	ticker := readTicker(c)
	chart, err := readChart(c, maxBytes)

	if ticker.IsZero() {
		return ticker, chart, &inputError{status: http.StatusBadRequest, message: MsgTickerRequired, err: usecase.ErrTickerRequired}
	}
	if err != nil {
		return ticker, nil, err
	}
	if chart.IsEmpty() {
		return ticker, nil, &inputError{status: http.StatusBadRequest, message: MsgChartRequired, err: usecase.ErrChartRequired}
	}
	return ticker, chart, nil
}

// asInputError は err を inputError に変換します。パイプラインの入力エラーも扱います。
func asInputError(err error) *inputError {
	var ie *inputError
	if errors.As(err, &ie) {
		return ie
	}
	switch {
	case errors.Is(err, usecase.ErrTickerRequired):
		return &inputError{status: http.StatusBadRequest, message: MsgTickerRequired, err: err}
	case errors.Is(err, usecase.ErrChartRequired):
		return &inputError{status: http.StatusBadRequest, message: MsgChartRequired, err: err}
	}
	return &inputError{status: http.StatusInternalServerError, message: usecase.FailurePrefix + err.Error(), err: err}
}
