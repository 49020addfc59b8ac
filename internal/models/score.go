package models

import (
	"time"

	"gorm.io/gorm"
)

// Score is the aggregate point summary for one of a user's cycles
type Score struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	CycleID    uint           `gorm:"uniqueIndex;not null" json:"cycle_id"`
	Points     int            `gorm:"default:0" json:"points"`
	MaxPoints  int            `gorm:"default:0" json:"max_points"`
	Percentage float64        `gorm:"type:decimal(5,2);default:0" json:"percentage"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Cycle Cycle `gorm:"foreignKey:CycleID" json:"-"`
}

// TableName specifies the table name for Score model
func (Score) TableName() string {
	return "scores"
}
