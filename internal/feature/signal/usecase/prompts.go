package usecase

import (
	"fmt"

	"chart_signal/internal/feature/signal/domain/entity"
)

const (
	// MaxSearchResults はセンチメント取得で使用する検索結果の最大件数です。
	MaxSearchResults = 5

	// FailurePrefix は失敗したステップの表示テキストの接頭辞です。
	FailurePrefix = "Hata oluştu: "

	// SearchQueryTemplate はセンチメント検索のクエリテンプレートです。
	SearchQueryTemplate = "%s hisse yorum haber son dakika"

	// TechnicalPromptTemplate はチャート分析のプロンプトテンプレートです。
	TechnicalPromptTemplate = `Sen uzman bir borsa teknik analistisin. Bu %s hissesinin grafiği.
Lütfen şu başlıklar altında detaylı bir analiz yap:
1. **Trend Analizi:** Ana trend ne yönde? (Yükseliş, Düşüş, Yatay)
2. **Formasyonlar:** Grafikte belirgin bir formasyon var mı? (Bayrak, OBO, TOBO, Kama vb.)
3. **Destek ve Dirençler:** Önemli destek ve direnç seviyeleri nereler?
4. **İndikatör Yorumu:** (Eğer görünüyorsa) Hacim veya hareketli ortalamalar ne söylüyor?

Analizini madde madde ve anlaşılır yaz.`

	// ChartTextHintTemplate はOCRで読み取ったチャート上の文字列を追記するテンプレートです。
	ChartTextHintTemplate = `

Grafik üzerinde okunan metinler (fiyat ekseni, etiketler):
%s`

	// SynthesisPromptTemplate はシグナル合成のプロンプトテンプレートです。
	// %[1]s は銘柄コード、%[2]s はテクニカル分析、%[3]s はセンチメントです。
	SynthesisPromptTemplate = `Aşağıda %[1]s hissesi için iki farklı veri kaynağı var.

**1. Grafik Analizi (Teknik):**
%[2]s

**2. Piyasa Haberleri ve Duygu Durumu (Temel/Sentiment):**
%[3]s

Bu iki veriyi sentezleyerek YATIRIMCIYA ÖZET BİR RAPOR SUN.

Çıktı Formatı:
# %[1]s Yatırım Sinyali

## 🚦 GÖRÜŞ: [AL / SAT / TUT / NÖTR] (Sebebini 1 cümleyle açıkla)

## 🎯 Kısa Vadeli Hedefler
- **İlk Hedef:** [Fiyat]
- **İkinci Hedef:** [Fiyat]
- **Stop Loss (Zarar Kes):** [Fiyat]

## 📝 Özet Değerlendirme
(Teknik ve temel verileri birleştirerek 2-3 cümlelik final yorumu.)`
)

// BuildTechnicalPrompt はチャート分析用のプロンプトを生成します。
// chartText が空の場合、プロンプトは銘柄コードのみで決まります。
func BuildTechnicalPrompt(ticker entity.Ticker, chartText string) string {
	prompt := fmt.Sprintf(TechnicalPromptTemplate, ticker)
	if chartText != "" {
		prompt += fmt.Sprintf(ChartTextHintTemplate, chartText)
	}
	return prompt
}

// BuildSearchQuery はセンチメント検索用のクエリを生成します。
func BuildSearchQuery(ticker entity.Ticker) string {
	return fmt.Sprintf(SearchQueryTemplate, ticker)
}

// BuildSynthesisPrompt はシグナル合成用のプロンプトを生成します。
// technical と sentiment はそのまま埋め込まれます。
func BuildSynthesisPrompt(ticker entity.Ticker, technical, sentiment string) string {
	return fmt.Sprintf(SynthesisPromptTemplate, ticker, technical, sentiment)
}

// failure はエラーを表示用テキストに変換したStepResultを返します。
func failure(err error) entity.StepResult {
	return entity.StepResult{Text: FailurePrefix + err.Error(), Err: err}
}
