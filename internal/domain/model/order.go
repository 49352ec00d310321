package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// 確定した購入のスナップショット。作成後はPaid以外変更しない
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"not null;index" json:"user_id"`
	Number          int64           `gorm:"not null;uniqueIndex" json:"number"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Paid            bool            `gorm:"not null;default:false" json:"paid"`
	ShippingAddress string          `gorm:"type:varchar(255)" json:"shipping_address"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 注文番号を5桁ゼロ埋めで返す（例: 00003）
func (o Order) FormattedNumber() string {
	return fmt.Sprintf("%05d", o.Number)
}
