// Package web はシングルページUIのHTMLテンプレートを提供します。
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// IndexTemplate はトップページのテンプレート名です。
const IndexTemplate = "index.html"

// Templates は埋め込みテンプレートを解析して返します。
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
