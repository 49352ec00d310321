package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// 外部決済に渡す明細
type Item struct {
	Title     string
	Quantity  int64
	UnitPrice decimal.Decimal
	Currency  string
}

// 決済完了後の戻り先
type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// プリファレンス作成のリクエスト
type PreferenceRequest struct {
	Items             []Item
	PayerEmail        string
	BackURLs          BackURLs
	ExternalReference string
}

// Gatewayは決済プロセッサへの約束。成功時はリダイレクトURLを返す
type Gateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (string, error)
}
