package repository

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"gorm.io/gorm"
)

var (
	ErrScoreNotFound = errors.New("score not found")
)

// ScoreRepository handles score data access
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new ScoreRepository
func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create creates a new score
func (r *ScoreRepository) Create(score *models.Score) error {
	return r.db.Create(score).Error
}

// GetByID retrieves a score by ID
func (r *ScoreRepository) GetByID(id uint) (*models.Score, error) {
	var score models.Score
	result := r.db.First(&score, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, result.Error
	}
	return &score, nil
}

// GetByCycleID retrieves the score for a cycle
func (r *ScoreRepository) GetByCycleID(cycleID uint) (*models.Score, error) {
	var score models.Score
	result := r.db.Where("cycle_id = ?", cycleID).First(&score)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, result.Error
	}
	return &score, nil
}

// ExistsByCycleID checks if a score exists for a cycle
func (r *ScoreRepository) ExistsByCycleID(cycleID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Score{}).Where("cycle_id = ?", cycleID).Count(&count)
	return count > 0, result.Error
}

// GetByUserID retrieves all scores for a user
func (r *ScoreRepository) GetByUserID(userID uint) ([]models.Score, error) {
	var scores []models.Score
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&scores)
	return scores, result.Error
}

// GetAll retrieves all scores
func (r *ScoreRepository) GetAll() ([]models.Score, error) {
	var scores []models.Score
	result := r.db.Order("created_at DESC").Find(&scores)
	return scores, result.Error
}

// Update updates a score
func (r *ScoreRepository) Update(score *models.Score) error {
	return r.db.Save(score).Error
}

// Delete soft deletes a score
func (r *ScoreRepository) Delete(id uint) error {
	return r.db.Delete(&models.Score{}, id).Error
}
