package entity

import (
	"time"
)

// Address belongs to exactly one User via UserID.
type Address struct {
	ID        uint    `gorm:"primaryKey"`
	Street    string  `gorm:"size:255;not null"`
	Number    *string `gorm:"size:32"`
	City      string  `gorm:"size:120;not null"`
	UserID    uint    `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Address) TableName() string {
	return "addresses"
}
