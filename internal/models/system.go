package models

import (
	"time"

	"gorm.io/gorm"
)

// System groups a user's medication, diet and training records.
// A user has at most one.
type System struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Name      string         `gorm:"size:100" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Diets       []Diet       `gorm:"foreignKey:SystemID" json:"diets,omitempty"`
	Trainings   []Training   `gorm:"foreignKey:SystemID" json:"trainings,omitempty"`
	Medications []Medication `gorm:"foreignKey:SystemID" json:"medications,omitempty"`
}

// TableName specifies the table name for System model
func (System) TableName() string {
	return "systems"
}

// Diet is one diet plan entry within a system
type Diet struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SystemID    uint           `gorm:"index;not null" json:"system_id"`
	Description string         `gorm:"type:text" json:"description"`
	Meals       string         `gorm:"type:text" json:"meals"`
	Calories    int            `gorm:"default:0" json:"calories"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Diet model
func (Diet) TableName() string {
	return "diets"
}

// Training is one training plan entry within a system
type Training struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SystemID    uint           `gorm:"index;not null" json:"system_id"`
	Description string         `gorm:"type:text" json:"description"`
	Weekday     string         `gorm:"size:20" json:"weekday"`
	Focus       string         `gorm:"size:100" json:"focus"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Training model
func (Training) TableName() string {
	return "trainings"
}

// Medication is one medication entry within a system
type Medication struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SystemID  uint           `gorm:"index;not null" json:"system_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Dosage    string         `gorm:"size:100" json:"dosage"`
	Schedule  string         `gorm:"size:100" json:"schedule"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Medication model
func (Medication) TableName() string {
	return "medications"
}
