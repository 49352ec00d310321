package logging

import "go.uber.org/zap"

// NewLoggerは環境に合わせたzapロガーを返す。
func NewLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
