package service

import (
	"errors"
	"time"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
)

var (
	ErrCycleExists       = errors.New("cycle already exists for this user, number and date")
	ErrActiveCycleExists = errors.New("user already has an active cycle")
)

// CycleService handles adherence cycle operations
type CycleService struct {
	cycleRepo *repository.CycleRepository
	dayRepo   *repository.CycleDayRepository
	userRepo  *repository.UserRepository
}

// NewCycleService creates a new CycleService
func NewCycleService(
	cycleRepo *repository.CycleRepository,
	dayRepo *repository.CycleDayRepository,
	userRepo *repository.UserRepository,
) *CycleService {
	return &CycleService{
		cycleRepo: cycleRepo,
		dayRepo:   dayRepo,
		userRepo:  userRepo,
	}
}

// CreateCycleRequest represents the create cycle request
type CreateCycleRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	Number     int    `json:"number" binding:"omitempty,gt=0"`
	Date       string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Medication bool   `json:"medication"`
	Training   bool   `json:"training"`
	Diet       bool   `json:"diet"`
	FreeMeal   bool   `json:"free_meal"`
	Rest       bool   `json:"rest"`
}

// UpdateCycleRequest represents the update cycle request
type UpdateCycleRequest struct {
	Medication *bool `json:"medication"`
	Training   *bool `json:"training"`
	Diet       *bool `json:"diet"`
	FreeMeal   *bool `json:"free_meal"`
	Rest       *bool `json:"rest"`
}

// CreateCycle starts a new cycle for a user. The cycle number defaults to the
// user's cycle count plus one and the date to today. A user cannot have two
// cycles with the same (number, date) nor two active cycles at once.
func (s *CycleService) CreateCycle(req *CreateCycleRequest) (*models.Cycle, error) {
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		return nil, err
	}

	number := req.Number
	if number == 0 {
		count, err := s.cycleRepo.CountByUserID(req.UserID)
		if err != nil {
			return nil, err
		}
		number = int(count) + 1
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	exists, err := s.cycleRepo.ExistsByUserNumberDate(req.UserID, number, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCycleExists
	}

	active, err := s.cycleRepo.ExistsActiveByUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrActiveCycleExists
	}

	cycle := &models.Cycle{
		UserID:     req.UserID,
		Number:     number,
		Date:       date,
		Medication: req.Medication,
		Training:   req.Training,
		Diet:       req.Diet,
		FreeMeal:   req.FreeMeal,
		Rest:       req.Rest,
		Active:     true,
	}
	if err := s.cycleRepo.Create(cycle); err != nil {
		return nil, err
	}
	return cycle, nil
}

// GetCycles retrieves all cycles
func (s *CycleService) GetCycles() ([]models.Cycle, error) {
	return s.cycleRepo.GetAll()
}

// GetCycleByID retrieves a cycle by ID
func (s *CycleService) GetCycleByID(id uint) (*models.Cycle, error) {
	return s.cycleRepo.GetByID(id)
}

// GetCyclesByUserID retrieves all cycles for a user
func (s *CycleService) GetCyclesByUserID(userID uint) ([]models.Cycle, error) {
	return s.cycleRepo.GetByUserID(userID)
}

// GetActiveCycleByUserID retrieves a user's currently active cycle
func (s *CycleService) GetActiveCycleByUserID(userID uint) (*models.Cycle, error) {
	return s.cycleRepo.GetActiveByUserID(userID)
}

// UpdateCycle updates a cycle's adherence flags
func (s *CycleService) UpdateCycle(id uint, req *UpdateCycleRequest) (*models.Cycle, error) {
	cycle, err := s.cycleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Medication != nil {
		cycle.Medication = *req.Medication
	}
	if req.Training != nil {
		cycle.Training = *req.Training
	}
	if req.Diet != nil {
		cycle.Diet = *req.Diet
	}
	if req.FreeMeal != nil {
		cycle.FreeMeal = *req.FreeMeal
	}
	if req.Rest != nil {
		cycle.Rest = *req.Rest
	}

	if err := s.cycleRepo.Update(cycle); err != nil {
		return nil, err
	}
	return cycle, nil
}

// FinalizeCycle marks a cycle inactive. Idempotent: finalizing an already
// finalized cycle is a no-op.
func (s *CycleService) FinalizeCycle(id uint) (*models.Cycle, error) {
	cycle, err := s.cycleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if cycle.Active {
		cycle.Active = false
		if err := s.cycleRepo.Update(cycle); err != nil {
			return nil, err
		}
	}
	return cycle, nil
}

// DeleteCycle deletes a cycle
func (s *CycleService) DeleteCycle(id uint) error {
	if _, err := s.cycleRepo.GetByID(id); err != nil {
		return err
	}
	return s.cycleRepo.Delete(id)
}

// CreateCycleDayRequest represents the create cycle day request
type CreateCycleDayRequest struct {
	CycleID    uint   `json:"cycle_id" binding:"required"`
	Medication bool   `json:"medication"`
	Training   bool   `json:"training"`
	Diet       bool   `json:"diet"`
	FreeMeal   bool   `json:"free_meal"`
	Rest       bool   `json:"rest"`
	Notes      string `json:"notes"`
}

// UpdateCycleDayRequest represents the update cycle day request
type UpdateCycleDayRequest struct {
	Medication *bool   `json:"medication"`
	Training   *bool   `json:"training"`
	Diet       *bool   `json:"diet"`
	FreeMeal   *bool   `json:"free_meal"`
	Rest       *bool   `json:"rest"`
	Notes      *string `json:"notes"`
}

// CreateCycleDay records a new day within a cycle and advances the cycle's
// day counter
func (s *CycleService) CreateCycleDay(req *CreateCycleDayRequest) (*models.CycleDay, error) {
	cycle, err := s.cycleRepo.GetByID(req.CycleID)
	if err != nil {
		return nil, err
	}

	day := &models.CycleDay{
		CycleID:    cycle.ID,
		Day:        cycle.CurrentDay + 1,
		Medication: req.Medication,
		Training:   req.Training,
		Diet:       req.Diet,
		FreeMeal:   req.FreeMeal,
		Rest:       req.Rest,
		Notes:      req.Notes,
	}
	if err := s.dayRepo.Create(day); err != nil {
		return nil, err
	}

	cycle.CurrentDay++
	if err := s.cycleRepo.Update(cycle); err != nil {
		return nil, err
	}
	return day, nil
}

// GetCycleDays retrieves all cycle days
func (s *CycleService) GetCycleDays() ([]models.CycleDay, error) {
	return s.dayRepo.GetAll()
}

// GetCycleDayByID retrieves a cycle day by ID
func (s *CycleService) GetCycleDayByID(id uint) (*models.CycleDay, error) {
	return s.dayRepo.GetByID(id)
}

// GetDaysByCycleID retrieves all days for a cycle
func (s *CycleService) GetDaysByCycleID(cycleID uint) ([]models.CycleDay, error) {
	if _, err := s.cycleRepo.GetByID(cycleID); err != nil {
		return nil, err
	}
	return s.dayRepo.GetByCycleID(cycleID)
}

// UpdateCycleDay updates a cycle day
func (s *CycleService) UpdateCycleDay(id uint, req *UpdateCycleDayRequest) (*models.CycleDay, error) {
	day, err := s.dayRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Medication != nil {
		day.Medication = *req.Medication
	}
	if req.Training != nil {
		day.Training = *req.Training
	}
	if req.Diet != nil {
		day.Diet = *req.Diet
	}
	if req.FreeMeal != nil {
		day.FreeMeal = *req.FreeMeal
	}
	if req.Rest != nil {
		day.Rest = *req.Rest
	}
	if req.Notes != nil {
		day.Notes = *req.Notes
	}

	if err := s.dayRepo.Update(day); err != nil {
		return nil, err
	}
	return day, nil
}

// DeleteCycleDay deletes a cycle day
func (s *CycleService) DeleteCycleDay(id uint) error {
	if _, err := s.dayRepo.GetByID(id); err != nil {
		return err
	}
	return s.dayRepo.Delete(id)
}
