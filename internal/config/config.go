package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	GoEnv   string // dev/prod
	BaseURL string // 決済の戻りURLを組むのに使う

	MPAccessToken string // Mercado Pagoのアクセストークン
	MPSandbox     bool   // sandbox_init_pointを使うか
	Currency      string // 決済通貨（ARS）

	MediaDir string // 請求書PDFの出力先
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv:   os.Getenv("GO_ENV"),
		BaseURL: os.Getenv("BASE_URL"),

		MPAccessToken: os.Getenv("MP_ACCESS_TOKEN"),
		MPSandbox:     envBool("MP_SANDBOX", true),
		Currency:      getenv("CURRENCY", "ARS"),

		MediaDir: getenv("MEDIA_DIR", "static/media"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("BASE_URL is required")
	}
	if cfg.MPAccessToken == "" {
		return Config{}, fmt.Errorf("MP_ACCESS_TOKEN is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
