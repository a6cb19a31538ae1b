// Package markdown はモデルが生成したMarkdownをHTMLに変換します。
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer はMarkdownをHTMLに変換します。
// 生のHTMLは出力しないため、モデル出力をそのまま渡しても安全です。
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer はGFM拡張を有効にしたRendererを生成します。
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render はMarkdownをテンプレートに埋め込めるHTMLに変換します。
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark escapes raw HTML without WithUnsafe
}
