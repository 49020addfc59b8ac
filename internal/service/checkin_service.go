package service

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDayZeroExists = errors.New("cycle already has a day zero record")
	ErrDailyExists   = errors.New("cycle day already has a daily check-in")
)

// pointsPerFlag is the score awarded for each adherence flag met on a day
const pointsPerFlag = 1

// CheckinService handles day zero records and daily check-ins
type CheckinService struct {
	dayZeroRepo *repository.DayZeroRepository
	dailyRepo   *repository.DailyRepository
	cycleRepo   *repository.CycleRepository
	dayRepo     *repository.CycleDayRepository
}

// NewCheckinService creates a new CheckinService
func NewCheckinService(
	dayZeroRepo *repository.DayZeroRepository,
	dailyRepo *repository.DailyRepository,
	cycleRepo *repository.CycleRepository,
	dayRepo *repository.CycleDayRepository,
) *CheckinService {
	return &CheckinService{
		dayZeroRepo: dayZeroRepo,
		dailyRepo:   dailyRepo,
		cycleRepo:   cycleRepo,
		dayRepo:     dayRepo,
	}
}

// CreateDayZeroRequest represents the create day zero request
type CreateDayZeroRequest struct {
	CycleID uint    `json:"cycle_id" binding:"required"`
	Weight  float64 `json:"weight" binding:"omitempty,gt=0"`
	Waist   float64 `json:"waist" binding:"omitempty,gt=0"`
	Photos  string  `json:"photos"`
	Notes   string  `json:"notes"`
}

// UpdateDayZeroRequest represents the update day zero request
type UpdateDayZeroRequest struct {
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`
	Waist  *float64 `json:"waist" binding:"omitempty,gt=0"`
	Photos *string  `json:"photos"`
	Notes  *string  `json:"notes"`
}

// CreateDayZero records the one-time onboarding snapshot for a cycle
func (s *CheckinService) CreateDayZero(req *CreateDayZeroRequest) (*models.DayZero, error) {
	if _, err := s.cycleRepo.GetByID(req.CycleID); err != nil {
		return nil, err
	}

	exists, err := s.dayZeroRepo.ExistsByCycleID(req.CycleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDayZeroExists
	}

	dayZero := &models.DayZero{
		CycleID: req.CycleID,
		Weight:  req.Weight,
		Waist:   req.Waist,
		Photos:  req.Photos,
		Notes:   req.Notes,
	}
	if err := s.dayZeroRepo.Create(dayZero); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDayZeroExists
		}
		return nil, err
	}
	return dayZero, nil
}

// GetDayZeros retrieves all day zero records
func (s *CheckinService) GetDayZeros() ([]models.DayZero, error) {
	return s.dayZeroRepo.GetAll()
}

// GetDayZeroByID retrieves a day zero record by ID
func (s *CheckinService) GetDayZeroByID(id uint) (*models.DayZero, error) {
	return s.dayZeroRepo.GetByID(id)
}

// UpdateDayZero updates a day zero record
func (s *CheckinService) UpdateDayZero(id uint, req *UpdateDayZeroRequest) (*models.DayZero, error) {
	dayZero, err := s.dayZeroRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Weight != nil {
		dayZero.Weight = *req.Weight
	}
	if req.Waist != nil {
		dayZero.Waist = *req.Waist
	}
	if req.Photos != nil {
		dayZero.Photos = *req.Photos
	}
	if req.Notes != nil {
		dayZero.Notes = *req.Notes
	}

	if err := s.dayZeroRepo.Update(dayZero); err != nil {
		return nil, err
	}
	return dayZero, nil
}

// DeleteDayZero deletes a day zero record
func (s *CheckinService) DeleteDayZero(id uint) error {
	if _, err := s.dayZeroRepo.GetByID(id); err != nil {
		return err
	}
	return s.dayZeroRepo.Delete(id)
}

// CreateDailyRequest represents the create daily check-in request
type CreateDailyRequest struct {
	CycleDayID  uint    `json:"cycle_day_id" binding:"required"`
	Medication  bool    `json:"medication"`
	Training    bool    `json:"training"`
	Diet        bool    `json:"diet"`
	FreeMeal    bool    `json:"free_meal"`
	Rest        bool    `json:"rest"`
	WaterLiters float64 `json:"water_liters" binding:"omitempty,gte=0"`
	SleepHours  float64 `json:"sleep_hours" binding:"omitempty,gte=0"`
}

// UpdateDailyRequest represents the update daily check-in request
type UpdateDailyRequest struct {
	WaterLiters *float64 `json:"water_liters" binding:"omitempty,gte=0"`
	SleepHours  *float64 `json:"sleep_hours" binding:"omitempty,gte=0"`
}

// CreateDaily records a day's check-in and folds its points into the owning
// cycle's cumulative compliance count and score. One check-in per cycle day.
func (s *CheckinService) CreateDaily(req *CreateDailyRequest) (*models.Daily, error) {
	day, err := s.dayRepo.GetByID(req.CycleDayID)
	if err != nil {
		return nil, err
	}

	exists, err := s.dailyRepo.ExistsByCycleDayID(req.CycleDayID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDailyExists
	}

	met := countFlags(req.Medication, req.Training, req.Diet, req.FreeMeal, req.Rest)
	daily := &models.Daily{
		CycleDayID:  req.CycleDayID,
		Medication:  req.Medication,
		Training:    req.Training,
		Diet:        req.Diet,
		FreeMeal:    req.FreeMeal,
		Rest:        req.Rest,
		WaterLiters: req.WaterLiters,
		SleepHours:  req.SleepHours,
		Points:      met * pointsPerFlag,
	}
	if err := s.dailyRepo.Create(daily); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDailyExists
		}
		return nil, err
	}

	cycle, err := s.cycleRepo.GetByID(day.CycleID)
	if err != nil {
		return nil, err
	}
	cycle.Compliance += met
	cycle.Points += daily.Points
	if err := s.cycleRepo.Update(cycle); err != nil {
		return nil, err
	}

	return daily, nil
}

// GetDailies retrieves all daily check-ins
func (s *CheckinService) GetDailies() ([]models.Daily, error) {
	return s.dailyRepo.GetAll()
}

// GetDailyByID retrieves a daily check-in by ID
func (s *CheckinService) GetDailyByID(id uint) (*models.Daily, error) {
	return s.dailyRepo.GetByID(id)
}

// GetDailyByCycleDayID retrieves the check-in submitted for a cycle day
func (s *CheckinService) GetDailyByCycleDayID(cycleDayID uint) (*models.Daily, error) {
	return s.dailyRepo.GetByCycleDayID(cycleDayID)
}

// UpdateDaily updates a daily check-in's numeric fields. Adherence flags are
// immutable after submission; resubmitting a day is not supported.
func (s *CheckinService) UpdateDaily(id uint, req *UpdateDailyRequest) (*models.Daily, error) {
	daily, err := s.dailyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.WaterLiters != nil {
		daily.WaterLiters = *req.WaterLiters
	}
	if req.SleepHours != nil {
		daily.SleepHours = *req.SleepHours
	}

	if err := s.dailyRepo.Update(daily); err != nil {
		return nil, err
	}
	return daily, nil
}

// DeleteDaily deletes a daily check-in and removes its points from the
// owning cycle
func (s *CheckinService) DeleteDaily(id uint) error {
	daily, err := s.dailyRepo.GetByID(id)
	if err != nil {
		return err
	}

	day, err := s.dayRepo.GetByID(daily.CycleDayID)
	if err == nil {
		if cycle, cerr := s.cycleRepo.GetByID(day.CycleID); cerr == nil {
			cycle.Compliance -= daily.Points / pointsPerFlag
			cycle.Points -= daily.Points
			if uerr := s.cycleRepo.Update(cycle); uerr != nil {
				return uerr
			}
		}
	}

	return s.dailyRepo.Delete(id)
}

// countFlags counts how many adherence flags are set
func countFlags(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
