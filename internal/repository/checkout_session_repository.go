package repository

import (
	"context"

	"shop/internal/domain/model"
)

// プリファレンス作成と注文確定の間で配送先を受け渡す
type CheckoutSessionRepository interface {
	Put(ctx context.Context, userID int64, shippingAddress string) error
	FindByUserID(ctx context.Context, userID int64) (model.CheckoutSession, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}
