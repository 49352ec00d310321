package repository

import (
	"context"
	"errors"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutSessionGormRepository struct {
	db *gorm.DB
}

func NewCheckoutSessionGormRepository(db *gorm.DB) *CheckoutSessionGormRepository {
	return &CheckoutSessionGormRepository{db: db}
}

// 同一ユーザーの再チェックアウトは上書き
func (r *CheckoutSessionGormRepository) Put(ctx context.Context, userID int64, shippingAddress string) error {
	now := time.Now()
	s := model.CheckoutSession{
		UserID:          userID,
		ShippingAddress: shippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"shipping_address", "updated_at"}),
		}).
		Create(&s).Error
}

func (r *CheckoutSessionGormRepository) FindByUserID(ctx context.Context, userID int64) (model.CheckoutSession, error) {
	var s model.CheckoutSession

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CheckoutSession{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CheckoutSession{}, err
	}
	return s, nil
}

func (r *CheckoutSessionGormRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CheckoutSession{}).Error
}
