package entity

import (
	"time"
)

// User is the aggregate root for the user domain. It owns its Addresses:
// deleting a user must remove the owned rows first so none are orphaned.
type User struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:255;not null"`
	Occupation *string   `gorm:"size:255"`
	Newsletter bool      `gorm:"not null;default:false"`
	Addresses  []Address `gorm:"foreignKey:UserID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
