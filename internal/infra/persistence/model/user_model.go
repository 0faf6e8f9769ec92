package model

import "time"

// UserModel mirrors the 'users' table. Email uniqueness is enforced at the
// column level; the usecase also pre-checks so the common case gets a clean
// error rather than a constraint violation.
type UserModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255)"`
	Business  *string `gorm:"type:varchar(255)"`
	Email     string  `gorm:"type:varchar(255);unique;not null"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Role      string  `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
