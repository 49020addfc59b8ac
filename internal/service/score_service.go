package service

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrScoreExists = errors.New("cycle already has a score")
)

// maxFlagsPerDay is how many adherence flags a daily check-in can meet
const maxFlagsPerDay = 5

// ScoreService handles per-cycle score summaries
type ScoreService struct {
	scoreRepo *repository.ScoreRepository
	cycleRepo *repository.CycleRepository
	dailyRepo *repository.DailyRepository
}

// NewScoreService creates a new ScoreService
func NewScoreService(
	scoreRepo *repository.ScoreRepository,
	cycleRepo *repository.CycleRepository,
	dailyRepo *repository.DailyRepository,
) *ScoreService {
	return &ScoreService{
		scoreRepo: scoreRepo,
		cycleRepo: cycleRepo,
		dailyRepo: dailyRepo,
	}
}

// CreateScoreRequest represents the create score request
type CreateScoreRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	CycleID   uint `json:"cycle_id" binding:"required"`
	Points    int  `json:"points" binding:"omitempty,gte=0"`
	MaxPoints int  `json:"max_points" binding:"omitempty,gte=0"`
}

// UpdateScoreRequest represents the update score request
type UpdateScoreRequest struct {
	Points    *int `json:"points" binding:"omitempty,gte=0"`
	MaxPoints *int `json:"max_points" binding:"omitempty,gte=0"`
}

// CreateScore creates a score summary row. One per cycle; the unique index
// on cycle_id guards the create race.
func (s *ScoreService) CreateScore(req *CreateScoreRequest) (*models.Score, error) {
	cycle, err := s.cycleRepo.GetByID(req.CycleID)
	if err != nil {
		return nil, err
	}

	exists, err := s.scoreRepo.ExistsByCycleID(req.CycleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrScoreExists
	}

	score := &models.Score{
		UserID:    req.UserID,
		CycleID:   cycle.ID,
		Points:    req.Points,
		MaxPoints: req.MaxPoints,
	}
	score.Percentage = percentage(score.Points, score.MaxPoints)
	if err := s.scoreRepo.Create(score); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScoreExists
		}
		return nil, err
	}
	return score, nil
}

// GetScores retrieves all scores
func (s *ScoreService) GetScores() ([]models.Score, error) {
	return s.scoreRepo.GetAll()
}

// GetScoreByID retrieves a score by ID
func (s *ScoreService) GetScoreByID(id uint) (*models.Score, error) {
	return s.scoreRepo.GetByID(id)
}

// GetScoresByUserID retrieves all scores for a user
func (s *ScoreService) GetScoresByUserID(userID uint) ([]models.Score, error) {
	return s.scoreRepo.GetByUserID(userID)
}

// UpdateScore updates a score
func (s *ScoreService) UpdateScore(id uint, req *UpdateScoreRequest) (*models.Score, error) {
	score, err := s.scoreRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Points != nil {
		score.Points = *req.Points
	}
	if req.MaxPoints != nil {
		score.MaxPoints = *req.MaxPoints
	}
	score.Percentage = percentage(score.Points, score.MaxPoints)

	if err := s.scoreRepo.Update(score); err != nil {
		return nil, err
	}
	return score, nil
}

// DeleteScore deletes a score
func (s *ScoreService) DeleteScore(id uint) error {
	if _, err := s.scoreRepo.GetByID(id); err != nil {
		return err
	}
	return s.scoreRepo.Delete(id)
}

// RecalculateScore rebuilds a cycle's score summary from its daily check-ins,
// creating the summary row when it does not exist yet
func (s *ScoreService) RecalculateScore(cycleID uint) (*models.Score, error) {
	cycle, err := s.cycleRepo.GetByID(cycleID)
	if err != nil {
		return nil, err
	}

	dailies, err := s.dailyRepo.GetByCycleID(cycleID)
	if err != nil {
		return nil, err
	}

	points := 0
	for _, daily := range dailies {
		points += daily.Points
	}
	maxPoints := len(dailies) * maxFlagsPerDay

	score, err := s.scoreRepo.GetByCycleID(cycleID)
	if err != nil {
		if !errors.Is(err, repository.ErrScoreNotFound) {
			return nil, err
		}
		score = &models.Score{
			UserID:  cycle.UserID,
			CycleID: cycle.ID,
		}
		score.Points = points
		score.MaxPoints = maxPoints
		score.Percentage = percentage(points, maxPoints)
		if err := s.scoreRepo.Create(score); err != nil {
			return nil, err
		}
		return score, nil
	}

	score.Points = points
	score.MaxPoints = maxPoints
	score.Percentage = percentage(points, maxPoints)
	if err := s.scoreRepo.Update(score); err != nil {
		return nil, err
	}
	return score, nil
}

// percentage computes points/max as a percentage, zero when max is zero
func percentage(points, maxPoints int) float64 {
	if maxPoints == 0 {
		return 0
	}
	return float64(points) / float64(maxPoints) * 100
}
