package models

import (
	"time"

	"gorm.io/gorm"
)

// Cycle represents a multi-day adherence-tracking period for a user.
// Date is the calendar day the cycle started (YYYY-MM-DD); the application
// rejects two cycles with the same (user, number, date).
type Cycle struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	Number     int            `gorm:"not null" json:"number"`
	Date       string         `gorm:"size:10;not null" json:"date"`
	Medication bool           `gorm:"default:false" json:"medication"`
	Training   bool           `gorm:"default:false" json:"training"`
	Diet       bool           `gorm:"default:false" json:"diet"`
	FreeMeal   bool           `gorm:"default:false" json:"free_meal"`
	Rest       bool           `gorm:"default:false" json:"rest"`
	Compliance int            `gorm:"default:0" json:"compliance"`
	Points     int            `gorm:"default:0" json:"points"`
	CurrentDay int            `gorm:"default:0" json:"current_day"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User    User       `gorm:"foreignKey:UserID" json:"-"`
	Days    []CycleDay `gorm:"foreignKey:CycleID" json:"days,omitempty"`
	DayZero *DayZero   `gorm:"foreignKey:CycleID" json:"day_zero,omitempty"`
}

// TableName specifies the table name for Cycle model
func (Cycle) TableName() string {
	return "cycles"
}

// CycleDay is one day's record within a cycle
type CycleDay struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CycleID    uint           `gorm:"index;not null" json:"cycle_id"`
	Day        int            `gorm:"not null" json:"day"`
	Medication bool           `gorm:"default:false" json:"medication"`
	Training   bool           `gorm:"default:false" json:"training"`
	Diet       bool           `gorm:"default:false" json:"diet"`
	FreeMeal   bool           `gorm:"default:false" json:"free_meal"`
	Rest       bool           `gorm:"default:false" json:"rest"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Cycle Cycle  `gorm:"foreignKey:CycleID" json:"-"`
	Daily *Daily `gorm:"foreignKey:CycleDayID" json:"daily,omitempty"`
}

// TableName specifies the table name for CycleDay model
func (CycleDay) TableName() string {
	return "cycle_days"
}

// DayZero is the one-time onboarding snapshot taken before a cycle starts.
// A cycle has at most one.
type DayZero struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CycleID   uint           `gorm:"uniqueIndex;not null" json:"cycle_id"`
	Weight    float64        `gorm:"type:decimal(5,2)" json:"weight"`
	Waist     float64        `gorm:"type:decimal(5,2)" json:"waist"`
	Photos    string         `gorm:"type:text" json:"photos"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Cycle Cycle `gorm:"foreignKey:CycleID" json:"-"`
}

// TableName specifies the table name for DayZero model
func (DayZero) TableName() string {
	return "day_zeros"
}

// Daily is the check-in submitted for one cycle day. A cycle day has at
// most one.
type Daily struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CycleDayID  uint           `gorm:"uniqueIndex;not null" json:"cycle_day_id"`
	Medication  bool           `gorm:"default:false" json:"medication"`
	Training    bool           `gorm:"default:false" json:"training"`
	Diet        bool           `gorm:"default:false" json:"diet"`
	FreeMeal    bool           `gorm:"default:false" json:"free_meal"`
	Rest        bool           `gorm:"default:false" json:"rest"`
	WaterLiters float64        `gorm:"type:decimal(4,2);default:0" json:"water_liters"`
	SleepHours  float64        `gorm:"type:decimal(4,2);default:0" json:"sleep_hours"`
	Points      int            `gorm:"default:0" json:"points"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CycleDay CycleDay `gorm:"foreignKey:CycleDayID" json:"-"`
}

// TableName specifies the table name for Daily model
func (Daily) TableName() string {
	return "dailies"
}
