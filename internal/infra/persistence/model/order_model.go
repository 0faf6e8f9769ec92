package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	CustomerName   string          `gorm:"type:varchar(255);not null"`
	Email          string          `gorm:"type:varchar(255);not null"`
	Phone          *string         `gorm:"type:varchar(64)"`
	Address        *string         `gorm:"type:text"`
	DeliveryMethod string          `gorm:"type:varchar(32);not null"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status         string          `gorm:"type:varchar(32);not null;default:pending"`
	CreatedAt      time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name and unit price
// are snapshots taken at order time.
type OrderItemModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
