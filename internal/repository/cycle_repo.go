package repository

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCycleNotFound    = errors.New("cycle not found")
	ErrCycleDayNotFound = errors.New("cycle day not found")
)

// CycleRepository handles cycle data access
type CycleRepository struct {
	db *gorm.DB
}

// NewCycleRepository creates a new CycleRepository
func NewCycleRepository(db *gorm.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

// Create creates a new cycle
func (r *CycleRepository) Create(cycle *models.Cycle) error {
	return r.db.Create(cycle).Error
}

// GetByID retrieves a cycle by ID
func (r *CycleRepository) GetByID(id uint) (*models.Cycle, error) {
	var cycle models.Cycle
	result := r.db.First(&cycle, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, result.Error
	}
	return &cycle, nil
}

// GetByUserID retrieves all cycles for a user
func (r *CycleRepository) GetByUserID(userID uint) ([]models.Cycle, error) {
	var cycles []models.Cycle
	result := r.db.Where("user_id = ?", userID).Order("number ASC").Find(&cycles)
	return cycles, result.Error
}

// GetActiveByUserID retrieves a user's active cycle
func (r *CycleRepository) GetActiveByUserID(userID uint) (*models.Cycle, error) {
	var cycle models.Cycle
	result := r.db.Where("user_id = ? AND active = ?", userID, true).First(&cycle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, result.Error
	}
	return &cycle, nil
}

// ExistsActiveByUserID checks whether a user has an active cycle
func (r *CycleRepository) ExistsActiveByUserID(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Cycle{}).Where("user_id = ? AND active = ?", userID, true).Count(&count).Error
	return count > 0, err
}

// ExistsByUserNumberDate checks whether a (user, number, date) cycle exists
func (r *CycleRepository) ExistsByUserNumberDate(userID uint, number int, date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Cycle{}).
		Where("user_id = ? AND number = ? AND date = ?", userID, number, date).
		Count(&count).Error
	return count > 0, err
}

// CountByUserID counts cycles for a user
func (r *CycleRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Cycle{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// GetAll retrieves all cycles
func (r *CycleRepository) GetAll() ([]models.Cycle, error) {
	var cycles []models.Cycle
	result := r.db.Order("created_at DESC").Find(&cycles)
	return cycles, result.Error
}

// Update updates a cycle
func (r *CycleRepository) Update(cycle *models.Cycle) error {
	return r.db.Save(cycle).Error
}

// Delete soft deletes a cycle
func (r *CycleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Cycle{}, id).Error
}

// CycleDayRepository handles cycle day data access
type CycleDayRepository struct {
	db *gorm.DB
}

// NewCycleDayRepository creates a new CycleDayRepository
func NewCycleDayRepository(db *gorm.DB) *CycleDayRepository {
	return &CycleDayRepository{db: db}
}

// Create creates a new cycle day
func (r *CycleDayRepository) Create(day *models.CycleDay) error {
	return r.db.Create(day).Error
}

// GetByID retrieves a cycle day by ID
func (r *CycleDayRepository) GetByID(id uint) (*models.CycleDay, error) {
	var day models.CycleDay
	result := r.db.First(&day, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCycleDayNotFound
		}
		return nil, result.Error
	}
	return &day, nil
}

// GetByCycleID retrieves all days for a cycle
func (r *CycleDayRepository) GetByCycleID(cycleID uint) ([]models.CycleDay, error) {
	var days []models.CycleDay
	result := r.db.Where("cycle_id = ?", cycleID).Order("day ASC").Find(&days)
	return days, result.Error
}

// GetAll retrieves all cycle days
func (r *CycleDayRepository) GetAll() ([]models.CycleDay, error) {
	var days []models.CycleDay
	result := r.db.Order("created_at DESC").Find(&days)
	return days, result.Error
}

// Update updates a cycle day
func (r *CycleDayRepository) Update(day *models.CycleDay) error {
	return r.db.Save(day).Error
}

// Delete soft deletes a cycle day
func (r *CycleDayRepository) Delete(id uint) error {
	return r.db.Delete(&models.CycleDay{}, id).Error
}
