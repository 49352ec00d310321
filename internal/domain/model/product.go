package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 在庫は注文確定だけが減らす
type Product struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DiscountPercent int64           `gorm:"not null;default:0" json:"discount_percent"`
	Stock           int64           `gorm:"not null;default:0" json:"stock"`
	CategoryID      *int64          `gorm:"index" json:"category_id"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 割引適用後の表示価格。カート合計には使わない
func (p Product) DiscountedPrice() decimal.Decimal {
	if p.DiscountPercent <= 0 {
		return p.Price
	}
	return p.Price.Sub(p.Savings())
}

// 割引で浮く金額
func (p Product) Savings() decimal.Decimal {
	if p.DiscountPercent <= 0 {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(p.DiscountPercent)).Div(decimal.NewFromInt(100))
}
