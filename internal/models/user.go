package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Admin        bool           `gorm:"default:false" json:"admin"`
	Active       bool           `gorm:"default:false" json:"active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Cart   *Cart   `gorm:"foreignKey:UserID" json:"cart,omitempty"`
	System *System `gorm:"foreignKey:UserID" json:"system,omitempty"`
	Cycles []Cycle `gorm:"foreignKey:UserID" json:"cycles,omitempty"`
	Scores []Score `gorm:"foreignKey:UserID" json:"scores,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
