// Package imageinput はアップロードされたチャート画像を検査してドメインの画像値に変換します。
package imageinput

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // image.DecodeConfig 用のデコーダー登録
	_ "image/png"  // image.DecodeConfig 用のデコーダー登録

	"github.com/gabriel-vasile/mimetype"

	"chart_signal/internal/feature/signal/domain/entity"
)

var (
	// ErrEmptyImage は画像データが空の場合に返されます。
	ErrEmptyImage = errors.New("image data is empty")
	// ErrImageTooLarge は画像サイズが上限を超えた場合に返されます。
	ErrImageTooLarge = errors.New("image size exceeds maximum")
	// ErrUnsupportedImage はJPEG/PNG以外の形式の場合に返されます。
	ErrUnsupportedImage = errors.New("unsupported image format")
	// ErrUndecodableImage は画像ヘッダーをデコードできない場合に返されます。
	ErrUndecodableImage = errors.New("image cannot be decoded")
)

// allowed は受け付けるMIMEタイプです。
var allowed = []string{"image/jpeg", "image/png"}

// Decode は画像バイト列の形式を判定し、デコード可能であることを確認します。
// maxBytes が0以下の場合はサイズを制限しません。
func Decode(data []byte, maxBytes int64) (*entity.ChartImage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w of %d bytes", ErrImageTooLarge, maxBytes)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowed...) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mt.String())
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	return &entity.ChartImage{
		Data:     data,
		MIMEType: mt.String(),
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
