package model

// 注文番号の採番用。1行だけ持ち、FOR UPDATEで直列化する
type OrderCounter struct {
	ID    int64 `gorm:"primaryKey"`
	Value int64 `gorm:"not null;default:0"`
}
