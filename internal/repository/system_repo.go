package repository

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSystemNotFound     = errors.New("system not found")
	ErrDietNotFound       = errors.New("diet not found")
	ErrTrainingNotFound   = errors.New("training not found")
	ErrMedicationNotFound = errors.New("medication not found")
)

// SystemRepository handles system data access
type SystemRepository struct {
	db *gorm.DB
}

// NewSystemRepository creates a new SystemRepository
func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// Create creates a new system
func (r *SystemRepository) Create(system *models.System) error {
	return r.db.Create(system).Error
}

// GetByID retrieves a system by ID with its sub-records
func (r *SystemRepository) GetByID(id uint) (*models.System, error) {
	var system models.System
	result := r.db.Preload("Diets").Preload("Trainings").Preload("Medications").First(&system, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSystemNotFound
		}
		return nil, result.Error
	}
	return &system, nil
}

// GetByUserID retrieves a user's system with its sub-records
func (r *SystemRepository) GetByUserID(userID uint) (*models.System, error) {
	var system models.System
	result := r.db.Preload("Diets").Preload("Trainings").Preload("Medications").
		Where("user_id = ?", userID).First(&system)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSystemNotFound
		}
		return nil, result.Error
	}
	return &system, nil
}

// ExistsByUserID checks whether a user already has a system
func (r *SystemRepository) ExistsByUserID(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.System{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all systems
func (r *SystemRepository) GetAll() ([]models.System, error) {
	var systems []models.System
	result := r.db.Order("created_at DESC").Find(&systems)
	return systems, result.Error
}

// Update updates a system
func (r *SystemRepository) Update(system *models.System) error {
	return r.db.Save(system).Error
}

// Delete soft deletes a system
func (r *SystemRepository) Delete(id uint) error {
	return r.db.Delete(&models.System{}, id).Error
}

// DietRepository handles diet data access
type DietRepository struct {
	db *gorm.DB
}

// NewDietRepository creates a new DietRepository
func NewDietRepository(db *gorm.DB) *DietRepository {
	return &DietRepository{db: db}
}

// Create creates a new diet
func (r *DietRepository) Create(diet *models.Diet) error {
	return r.db.Create(diet).Error
}

// GetByID retrieves a diet by ID
func (r *DietRepository) GetByID(id uint) (*models.Diet, error) {
	var diet models.Diet
	result := r.db.First(&diet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDietNotFound
		}
		return nil, result.Error
	}
	return &diet, nil
}

// GetBySystemID retrieves all diets for a system
func (r *DietRepository) GetBySystemID(systemID uint) ([]models.Diet, error) {
	var diets []models.Diet
	result := r.db.Where("system_id = ?", systemID).Find(&diets)
	return diets, result.Error
}

// GetAll retrieves all diets
func (r *DietRepository) GetAll() ([]models.Diet, error) {
	var diets []models.Diet
	result := r.db.Order("created_at DESC").Find(&diets)
	return diets, result.Error
}

// Update updates a diet
func (r *DietRepository) Update(diet *models.Diet) error {
	return r.db.Save(diet).Error
}

// Delete soft deletes a diet
func (r *DietRepository) Delete(id uint) error {
	return r.db.Delete(&models.Diet{}, id).Error
}

// TrainingRepository handles training data access
type TrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new TrainingRepository
func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create creates a new training
func (r *TrainingRepository) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

// GetByID retrieves a training by ID
func (r *TrainingRepository) GetByID(id uint) (*models.Training, error) {
	var training models.Training
	result := r.db.First(&training, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, result.Error
	}
	return &training, nil
}

// GetBySystemID retrieves all trainings for a system
func (r *TrainingRepository) GetBySystemID(systemID uint) ([]models.Training, error) {
	var trainings []models.Training
	result := r.db.Where("system_id = ?", systemID).Find(&trainings)
	return trainings, result.Error
}

// GetAll retrieves all trainings
func (r *TrainingRepository) GetAll() ([]models.Training, error) {
	var trainings []models.Training
	result := r.db.Order("created_at DESC").Find(&trainings)
	return trainings, result.Error
}

// Update updates a training
func (r *TrainingRepository) Update(training *models.Training) error {
	return r.db.Save(training).Error
}

// Delete soft deletes a training
func (r *TrainingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Training{}, id).Error
}

// MedicationRepository handles medication data access
type MedicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository creates a new MedicationRepository
func NewMedicationRepository(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

// Create creates a new medication
func (r *MedicationRepository) Create(medication *models.Medication) error {
	return r.db.Create(medication).Error
}

// GetByID retrieves a medication by ID
func (r *MedicationRepository) GetByID(id uint) (*models.Medication, error) {
	var medication models.Medication
	result := r.db.First(&medication, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMedicationNotFound
		}
		return nil, result.Error
	}
	return &medication, nil
}

// GetBySystemID retrieves all medications for a system
func (r *MedicationRepository) GetBySystemID(systemID uint) ([]models.Medication, error) {
	var medications []models.Medication
	result := r.db.Where("system_id = ?", systemID).Find(&medications)
	return medications, result.Error
}

// GetAll retrieves all medications
func (r *MedicationRepository) GetAll() ([]models.Medication, error) {
	var medications []models.Medication
	result := r.db.Order("created_at DESC").Find(&medications)
	return medications, result.Error
}

// Update updates a medication
func (r *MedicationRepository) Update(medication *models.Medication) error {
	return r.db.Save(medication).Error
}

// Delete soft deletes a medication
func (r *MedicationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Medication{}, id).Error
}
