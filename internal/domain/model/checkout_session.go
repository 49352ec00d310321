package model

import "time"

// 決済プリファレンス作成から注文確定までの間、配送先を預かる。
// 確定時に削除する
type CheckoutSession struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	ShippingAddress string    `gorm:"type:varchar(255)" json:"shipping_address"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
