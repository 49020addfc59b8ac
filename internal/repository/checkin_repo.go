package repository

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDayZeroNotFound = errors.New("day zero not found")
	ErrDailyNotFound   = errors.New("daily not found")
)

// DayZeroRepository handles day zero data access
type DayZeroRepository struct {
	db *gorm.DB
}

// NewDayZeroRepository creates a new DayZeroRepository
func NewDayZeroRepository(db *gorm.DB) *DayZeroRepository {
	return &DayZeroRepository{db: db}
}

// Create creates a new day zero record
func (r *DayZeroRepository) Create(dayZero *models.DayZero) error {
	return r.db.Create(dayZero).Error
}

// GetByID retrieves a day zero record by ID
func (r *DayZeroRepository) GetByID(id uint) (*models.DayZero, error) {
	var dayZero models.DayZero
	result := r.db.First(&dayZero, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDayZeroNotFound
		}
		return nil, result.Error
	}
	return &dayZero, nil
}

// GetByCycleID retrieves the day zero record for a cycle
func (r *DayZeroRepository) GetByCycleID(cycleID uint) (*models.DayZero, error) {
	var dayZero models.DayZero
	result := r.db.Where("cycle_id = ?", cycleID).First(&dayZero)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDayZeroNotFound
		}
		return nil, result.Error
	}
	return &dayZero, nil
}

// ExistsByCycleID checks whether a cycle already has a day zero record
func (r *DayZeroRepository) ExistsByCycleID(cycleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.DayZero{}).Where("cycle_id = ?", cycleID).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all day zero records
func (r *DayZeroRepository) GetAll() ([]models.DayZero, error) {
	var dayZeros []models.DayZero
	result := r.db.Order("created_at DESC").Find(&dayZeros)
	return dayZeros, result.Error
}

// Update updates a day zero record
func (r *DayZeroRepository) Update(dayZero *models.DayZero) error {
	return r.db.Save(dayZero).Error
}

// Delete soft deletes a day zero record
func (r *DayZeroRepository) Delete(id uint) error {
	return r.db.Delete(&models.DayZero{}, id).Error
}

// DailyRepository handles daily check-in data access
type DailyRepository struct {
	db *gorm.DB
}

// NewDailyRepository creates a new DailyRepository
func NewDailyRepository(db *gorm.DB) *DailyRepository {
	return &DailyRepository{db: db}
}

// Create creates a new daily check-in
func (r *DailyRepository) Create(daily *models.Daily) error {
	return r.db.Create(daily).Error
}

// GetByID retrieves a daily check-in by ID
func (r *DailyRepository) GetByID(id uint) (*models.Daily, error) {
	var daily models.Daily
	result := r.db.First(&daily, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDailyNotFound
		}
		return nil, result.Error
	}
	return &daily, nil
}

// GetByCycleDayID retrieves the daily check-in for a cycle day
func (r *DailyRepository) GetByCycleDayID(cycleDayID uint) (*models.Daily, error) {
	var daily models.Daily
	result := r.db.Where("cycle_day_id = ?", cycleDayID).First(&daily)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDailyNotFound
		}
		return nil, result.Error
	}
	return &daily, nil
}

// ExistsByCycleDayID checks whether a cycle day already has a daily check-in
func (r *DailyRepository) ExistsByCycleDayID(cycleDayID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Daily{}).Where("cycle_day_id = ?", cycleDayID).Count(&count).Error
	return count > 0, err
}

// GetByCycleID retrieves all daily check-ins belonging to a cycle's days
func (r *DailyRepository) GetByCycleID(cycleID uint) ([]models.Daily, error) {
	var dailies []models.Daily
	result := r.db.
		Joins("JOIN cycle_days ON cycle_days.id = dailies.cycle_day_id").
		Where("cycle_days.cycle_id = ?", cycleID).
		Find(&dailies)
	return dailies, result.Error
}

// GetAll retrieves all daily check-ins
func (r *DailyRepository) GetAll() ([]models.Daily, error) {
	var dailies []models.Daily
	result := r.db.Order("created_at DESC").Find(&dailies)
	return dailies, result.Error
}

// Update updates a daily check-in
func (r *DailyRepository) Update(daily *models.Daily) error {
	return r.db.Save(daily).Error
}

// Delete soft deletes a daily check-in
func (r *DailyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Daily{}, id).Error
}
