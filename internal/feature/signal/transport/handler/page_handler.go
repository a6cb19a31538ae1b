package handler

import (
	"encoding/base64"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"chart_signal/internal/feature/signal/domain/entity"
	"chart_signal/internal/feature/signal/transport/web"
)

// MarkdownRenderer はMarkdownをHTMLに変換するインターフェースです。
type MarkdownRenderer interface {
	Render(src string) (template.HTML, error)
}

// PageHandler はシングルページUIを処理します。
type PageHandler struct {
	uc             SignalUsecase
	tmpl           *template.Template
	md             MarkdownRenderer
	maxUploadBytes int64
}

// NewPageHandler はPageHandlerの新しいインスタンスを生成します。
func NewPageHandler(uc SignalUsecase, tmpl *template.Template, md MarkdownRenderer, maxUploadBytes int64) *PageHandler {
	return &PageHandler{uc: uc, tmpl: tmpl, md: md, maxUploadBytes: maxUploadBytes}
}

// pageData はテンプレートに渡す値です。
type pageData struct {
	Ticker       string
	Warning      string
	Error        string
	ImageDataURI template.URL
	Report       *reportView
}

// reportView は表示用に変換したレポートです。
type reportView struct {
	TechnicalHTML   template.HTML
	TechnicalFailed bool
	SentimentHTML   template.HTML
	SentimentFailed bool
	SignalHTML      template.HTML
}

// Index は入力フォームを表示します。
//
// エンドポイント: GET /
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{})
}

// Analyze はフォーム送信を受け取り、パイプラインを実行して結果を表示します。
// 入力が欠けている場合は警告を表示し、外部サービスは呼び出しません。
//
// エンドポイント: POST /
func (h *PageHandler) Analyze(c *gin.Context) {
	ticker, chart, err := readInputs(c, h.maxUploadBytes)
	data := pageData{Ticker: ticker.String(), ImageDataURI: dataURI(chart)}
	if err != nil {
		ie := asInputError(err)
		data.Warning = ie.message
		h.render(c, ie.status, data)
		return
	}

	report, err := h.uc.Run(c.Request.Context(), ticker, chart, nil)
	if err != nil {
		ie := asInputError(err)
		data.Warning = ie.message
		h.render(c, ie.status, data)
		return
	}

	data.Report = &reportView{
		TechnicalHTML:   h.markdown(report.TechnicalAnalysis.Text),
		TechnicalFailed: report.TechnicalAnalysis.Failed(),
		SentimentHTML:   h.markdown(report.Sentiment.Text),
		SentimentFailed: report.Sentiment.Failed(),
		SignalHTML:      h.markdown(report.Signal.Text),
	}
	h.render(c, http.StatusOK, data)
}

// markdown はテキストをHTMLに変換します。変換に失敗した場合はエスケープしたテキストを返します。
func (h *PageHandler) markdown(src string) template.HTML {
	out, err := h.md.Render(src)
	if err != nil {
		slog.Warn("Markdownの変換に失敗", "error", err)
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>") //nolint:gosec // escaped above
	}
	return out
}

func (h *PageHandler) render(c *gin.Context, status int, data pageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := h.tmpl.ExecuteTemplate(c.Writer, web.IndexTemplate, data); err != nil {
		slog.Error("テンプレートの描画に失敗", "error", err)
	}
}

// dataURI はアップロード画像をページ内に表示するためのdata URIを返します。
func dataURI(chart *entity.ChartImage) template.URL {
	if chart.IsEmpty() {
		return ""
	}
	return template.URL("data:" + chart.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(chart.Data)) //nolint:gosec // MIME type is sniffed, not user supplied
}
