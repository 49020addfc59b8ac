package service

import (
	"errors"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSystemExists = errors.New("user already has a system")
)

// SystemService handles the per-user system container and its diet,
// training and medication sub-records
type SystemService struct {
	systemRepo     *repository.SystemRepository
	dietRepo       *repository.DietRepository
	trainingRepo   *repository.TrainingRepository
	medicationRepo *repository.MedicationRepository
	userRepo       *repository.UserRepository
}

// NewSystemService creates a new SystemService
func NewSystemService(
	systemRepo *repository.SystemRepository,
	dietRepo *repository.DietRepository,
	trainingRepo *repository.TrainingRepository,
	medicationRepo *repository.MedicationRepository,
	userRepo *repository.UserRepository,
) *SystemService {
	return &SystemService{
		systemRepo:     systemRepo,
		dietRepo:       dietRepo,
		trainingRepo:   trainingRepo,
		medicationRepo: medicationRepo,
		userRepo:       userRepo,
	}
}

// CreateSystemRequest represents the create system request
type CreateSystemRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"omitempty,max=100"`
}

// UpdateSystemRequest represents the update system request
type UpdateSystemRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// CreateSystem creates a user's system container. One per user.
func (s *SystemService) CreateSystem(req *CreateSystemRequest) (*models.System, error) {
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		return nil, err
	}

	exists, err := s.systemRepo.ExistsByUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSystemExists
	}

	system := &models.System{
		UserID: req.UserID,
		Name:   req.Name,
	}
	if err := s.systemRepo.Create(system); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSystemExists
		}
		return nil, err
	}
	return system, nil
}

// GetSystems retrieves all systems
func (s *SystemService) GetSystems() ([]models.System, error) {
	return s.systemRepo.GetAll()
}

// GetSystemByID retrieves a system by ID
func (s *SystemService) GetSystemByID(id uint) (*models.System, error) {
	return s.systemRepo.GetByID(id)
}

// GetSystemByUserID retrieves a user's system
func (s *SystemService) GetSystemByUserID(userID uint) (*models.System, error) {
	return s.systemRepo.GetByUserID(userID)
}

// UpdateSystem updates a system
func (s *SystemService) UpdateSystem(id uint, req *UpdateSystemRequest) (*models.System, error) {
	system, err := s.systemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		system.Name = *req.Name
	}

	if err := s.systemRepo.Update(system); err != nil {
		return nil, err
	}
	return system, nil
}

// DeleteSystem deletes a system
func (s *SystemService) DeleteSystem(id uint) error {
	if _, err := s.systemRepo.GetByID(id); err != nil {
		return err
	}
	return s.systemRepo.Delete(id)
}

// CreateDietRequest represents the create diet request
type CreateDietRequest struct {
	SystemID    uint   `json:"system_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Meals       string `json:"meals"`
	Calories    int    `json:"calories" binding:"omitempty,gt=0"`
}

// UpdateDietRequest represents the update diet request
type UpdateDietRequest struct {
	Description *string `json:"description"`
	Meals       *string `json:"meals"`
	Calories    *int    `json:"calories" binding:"omitempty,gt=0"`
}

// CreateDiet creates a diet entry within a system
func (s *SystemService) CreateDiet(req *CreateDietRequest) (*models.Diet, error) {
	if _, err := s.systemRepo.GetByID(req.SystemID); err != nil {
		return nil, err
	}

	diet := &models.Diet{
		SystemID:    req.SystemID,
		Description: req.Description,
		Meals:       req.Meals,
		Calories:    req.Calories,
	}
	if err := s.dietRepo.Create(diet); err != nil {
		return nil, err
	}
	return diet, nil
}

// GetDiets retrieves all diets
func (s *SystemService) GetDiets() ([]models.Diet, error) {
	return s.dietRepo.GetAll()
}

// GetDietByID retrieves a diet by ID
func (s *SystemService) GetDietByID(id uint) (*models.Diet, error) {
	return s.dietRepo.GetByID(id)
}

// UpdateDiet updates a diet
func (s *SystemService) UpdateDiet(id uint, req *UpdateDietRequest) (*models.Diet, error) {
	diet, err := s.dietRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		diet.Description = *req.Description
	}
	if req.Meals != nil {
		diet.Meals = *req.Meals
	}
	if req.Calories != nil {
		diet.Calories = *req.Calories
	}

	if err := s.dietRepo.Update(diet); err != nil {
		return nil, err
	}
	return diet, nil
}

// DeleteDiet deletes a diet
func (s *SystemService) DeleteDiet(id uint) error {
	if _, err := s.dietRepo.GetByID(id); err != nil {
		return err
	}
	return s.dietRepo.Delete(id)
}

// CreateTrainingRequest represents the create training request
type CreateTrainingRequest struct {
	SystemID    uint   `json:"system_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Weekday     string `json:"weekday" binding:"omitempty,max=20"`
	Focus       string `json:"focus" binding:"omitempty,max=100"`
}

// UpdateTrainingRequest represents the update training request
type UpdateTrainingRequest struct {
	Description *string `json:"description"`
	Weekday     *string `json:"weekday" binding:"omitempty,max=20"`
	Focus       *string `json:"focus" binding:"omitempty,max=100"`
}

// CreateTraining creates a training entry within a system
func (s *SystemService) CreateTraining(req *CreateTrainingRequest) (*models.Training, error) {
	if _, err := s.systemRepo.GetByID(req.SystemID); err != nil {
		return nil, err
	}

	training := &models.Training{
		SystemID:    req.SystemID,
		Description: req.Description,
		Weekday:     req.Weekday,
		Focus:       req.Focus,
	}
	if err := s.trainingRepo.Create(training); err != nil {
		return nil, err
	}
	return training, nil
}

// GetTrainings retrieves all trainings
func (s *SystemService) GetTrainings() ([]models.Training, error) {
	return s.trainingRepo.GetAll()
}

// GetTrainingByID retrieves a training by ID
func (s *SystemService) GetTrainingByID(id uint) (*models.Training, error) {
	return s.trainingRepo.GetByID(id)
}

// UpdateTraining updates a training
func (s *SystemService) UpdateTraining(id uint, req *UpdateTrainingRequest) (*models.Training, error) {
	training, err := s.trainingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		training.Description = *req.Description
	}
	if req.Weekday != nil {
		training.Weekday = *req.Weekday
	}
	if req.Focus != nil {
		training.Focus = *req.Focus
	}

	if err := s.trainingRepo.Update(training); err != nil {
		return nil, err
	}
	return training, nil
}

// DeleteTraining deletes a training
func (s *SystemService) DeleteTraining(id uint) error {
	if _, err := s.trainingRepo.GetByID(id); err != nil {
		return err
	}
	return s.trainingRepo.Delete(id)
}

// CreateMedicationRequest represents the create medication request
type CreateMedicationRequest struct {
	SystemID uint   `json:"system_id" binding:"required"`
	Name     string `json:"name" binding:"required,max=100"`
	Dosage   string `json:"dosage" binding:"omitempty,max=100"`
	Schedule string `json:"schedule" binding:"omitempty,max=100"`
}

// UpdateMedicationRequest represents the update medication request
type UpdateMedicationRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Dosage   *string `json:"dosage" binding:"omitempty,max=100"`
	Schedule *string `json:"schedule" binding:"omitempty,max=100"`
}

// CreateMedication creates a medication entry within a system
func (s *SystemService) CreateMedication(req *CreateMedicationRequest) (*models.Medication, error) {
	if _, err := s.systemRepo.GetByID(req.SystemID); err != nil {
		return nil, err
	}

	medication := &models.Medication{
		SystemID: req.SystemID,
		Name:     req.Name,
		Dosage:   req.Dosage,
		Schedule: req.Schedule,
	}
	if err := s.medicationRepo.Create(medication); err != nil {
		return nil, err
	}
	return medication, nil
}

// GetMedications retrieves all medications
func (s *SystemService) GetMedications() ([]models.Medication, error) {
	return s.medicationRepo.GetAll()
}

// GetMedicationByID retrieves a medication by ID
func (s *SystemService) GetMedicationByID(id uint) (*models.Medication, error) {
	return s.medicationRepo.GetByID(id)
}

// UpdateMedication updates a medication
func (s *SystemService) UpdateMedication(id uint, req *UpdateMedicationRequest) (*models.Medication, error) {
	medication, err := s.medicationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		medication.Name = *req.Name
	}
	if req.Dosage != nil {
		medication.Dosage = *req.Dosage
	}
	if req.Schedule != nil {
		medication.Schedule = *req.Schedule
	}

	if err := s.medicationRepo.Update(medication); err != nil {
		return nil, err
	}
	return medication, nil
}

// DeleteMedication deletes a medication
func (s *SystemService) DeleteMedication(id uint) error {
	if _, err := s.medicationRepo.GetByID(id); err != nil {
		return err
	}
	return s.medicationRepo.Delete(id)
}
