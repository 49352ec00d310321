package repository

import "context"

type InventoryRepository interface {
	// 在庫の現在値を設定
	SetStock(ctx context.Context, productID int64, newStock int64) error

	// 在庫を減算。0未満にはせず0で止める
	DecreaseStockClamped(ctx context.Context, productID int64, qty int64) error
}
