package repository

import (
	"context"

	"shop/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	MarkPaid(ctx context.Context, orderID int64) error

	// 採番行をロックして次の注文番号を返す。トランザクション内でだけ呼ぶ
	NextNumber(ctx context.Context) (int64, error)
}
