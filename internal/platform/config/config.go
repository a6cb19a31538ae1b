// Package config はアプリケーション全体の設定を環境変数から読み込みます。
//
// 設定は起動時に一度だけ読み込まれ、各コンポーネントのコンストラクタへ明示的に渡されます。
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PlaceholderAPIKey は.envのサンプル値です。未設定として扱います。
const PlaceholderAPIKey = "YOUR_GEMINI_API_KEY_HERE"

// MissingCredentialMessage は認証情報がない場合にユーザーへ表示するメッセージです。
const MissingCredentialMessage = "Lütfen Google Gemini API anahtarınızı girin veya .env dosyasına ekleyin."

// ErrMissingCredential はGemini APIの認証情報が得られなかった場合に返されます。
var ErrMissingCredential = errors.New("gemini api key is not configured")

// Config はアプリケーション設定の全体です。
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Search SearchConfig
	Redis  RedisConfig
	Vision VisionConfig
}

// ServerConfig はHTTPサーバーの設定です。
type ServerConfig struct {
	Port           string
	MaxUploadBytes int64 // アップロード画像の最大サイズ
}

// GeminiConfig は生成モデルの設定です。
type GeminiConfig struct {
	APIKey      string
	Model       string
	UseVertexAI bool
}

// SearchConfig はWeb検索の設定です。
type SearchConfig struct {
	BaseURL string
	Region  string
	Timeout time.Duration
}

// RedisConfig はセンチメントキャッシュ用Redisの設定です。Host が空ならキャッシュを使用しません。
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	SentimentTTL time.Duration
}

// Enabled はRedisの接続先が設定されているかどうかを返します。
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Addr は host:port 形式の接続先を返します。
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// VisionConfig はチャートOCRの設定です。
type VisionConfig struct {
	Enabled bool
}

// Load は.env（存在する場合）と環境変数から設定を読み込みます。
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			MaxUploadBytes: getInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
		},
		Gemini: GeminiConfig{
			APIKey:      os.Getenv("GOOGLE_API_KEY"),
			Model:       getEnv("GEMINI_MODEL", "gemini-flash-latest"),
			UseVertexAI: getBool("GOOGLE_GENAI_USE_VERTEXAI", false),
		},
		Search: SearchConfig{
			BaseURL: getEnv("SEARCH_BASE_URL", "https://html.duckduckgo.com"),
			Region:  getEnv("SEARCH_REGION", "tr-tr"),
			Timeout: getDuration("SEARCH_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:         os.Getenv("REDIS_HOST"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			SentimentTTL: getDuration("SENTIMENT_CACHE_TTL", 10*time.Minute),
		},
		Vision: VisionConfig{
			Enabled: getBool("VISION_OCR_ENABLED", false),
		},
	}
}

// getEnv は環境変数を返します。未設定の場合は defaultValue を返します。
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		slog.Warn("invalid boolean in environment", "key", key, "error", err)
		return defaultValue
	}
	return v
}

func getInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, strconv.FormatInt(defaultValue, 10)), 10, 64)
	if err != nil || v <= 0 {
		slog.Warn("invalid integer in environment", "key", key)
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, defaultValue.String()))
	if err != nil || v <= 0 {
		slog.Warn("invalid duration in environment", "key", key)
		return defaultValue
	}
	return v
}
