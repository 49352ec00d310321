package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderCounterID = 1

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) MarkPaid(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("paid", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 採番行をFOR UPDATEでロックして加算する。同時チェックアウトでも
// 番号は重複しない。囲みトランザクションの中でだけ意味を持つ
func (r *OrderGormRepository) NextNumber(ctx context.Context) (int64, error) {
	var c model.OrderCounter

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderCounterID).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.OrderCounter{ID: orderCounterID, Value: 0}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	c.Value++

	res := r.db.WithContext(ctx).
		Model(&model.OrderCounter{}).
		Where("id = ?", orderCounterID).
		Update("value", c.Value)
	if res.Error != nil {
		return 0, res.Error
	}

	return c.Value, nil
}
