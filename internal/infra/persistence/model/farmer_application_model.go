package model

import "time"

// FarmerApplicationModel mirrors the 'farmer_applications' table.
// Both insert and list use this one table name.
type FarmerApplicationModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	BusinessName string  `gorm:"type:varchar(255);not null"`
	OwnerName    string  `gorm:"type:varchar(255);not null"`
	Email        string  `gorm:"type:varchar(255);not null"`
	Phone        *string `gorm:"type:varchar(64)"`
	City         string  `gorm:"type:varchar(128);not null"`
	Products     string  `gorm:"type:text;not null"`
	BankDetails  *string `gorm:"type:text"`
	Website      *string `gorm:"type:varchar(255)"`
	Photo        *string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerApplicationModel) TableName() string {
	return "farmer_applications"
}
