package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles system, diet, training and medication API requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// CreateSystem handles system creation
// POST /api/v1/sistema
func (h *SystemHandler) CreateSystem(c *gin.Context) {
	var req service.CreateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	system, err := h.systemService.CreateSystem(&req)
	if err != nil {
		if errors.Is(err, service.ErrSystemExists) {
			response.Conflict(c, "user already has a system")
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, system)
}

// GetSystems handles listing all systems
// GET /api/v1/sistema
func (h *SystemHandler) GetSystems(c *gin.Context) {
	systems, err := h.systemService.GetSystems()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, systems)
}

// GetSystem handles getting a single system with its sub-records
// GET /api/v1/sistema/:id
func (h *SystemHandler) GetSystem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid system id")
		return
	}

	system, err := h.systemService.GetSystemByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, system)
}

// GetSystemByUser handles getting a user's system
// GET /api/v1/sistema/usuario/:userId
func (h *SystemHandler) GetSystemByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	system, err := h.systemService.GetSystemByUserID(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, system)
}

// UpdateSystem handles updating a system
// PUT /api/v1/sistema/:id
func (h *SystemHandler) UpdateSystem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid system id")
		return
	}

	var req service.UpdateSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	system, err := h.systemService.UpdateSystem(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, system)
}

// DeleteSystem handles deleting a system
// DELETE /api/v1/sistema/:id
func (h *SystemHandler) DeleteSystem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid system id")
		return
	}

	if err := h.systemService.DeleteSystem(uint(id)); err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "system deleted"})
}

// CreateDiet handles diet creation
// POST /api/v1/dieta
func (h *SystemHandler) CreateDiet(c *gin.Context) {
	var req service.CreateDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	diet, err := h.systemService.CreateDiet(&req)
	if err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, diet)
}

// GetDiets handles listing all diets
// GET /api/v1/dieta
func (h *SystemHandler) GetDiets(c *gin.Context) {
	diets, err := h.systemService.GetDiets()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, diets)
}

// GetDiet handles getting a single diet
// GET /api/v1/dieta/:id
func (h *SystemHandler) GetDiet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid diet id")
		return
	}

	diet, err := h.systemService.GetDietByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrDietNotFound) {
			response.NotFound(c, "diet not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, diet)
}

// UpdateDiet handles updating a diet
// PUT /api/v1/dieta/:id
func (h *SystemHandler) UpdateDiet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid diet id")
		return
	}

	var req service.UpdateDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	diet, err := h.systemService.UpdateDiet(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDietNotFound) {
			response.NotFound(c, "diet not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, diet)
}

// DeleteDiet handles deleting a diet
// DELETE /api/v1/dieta/:id
func (h *SystemHandler) DeleteDiet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid diet id")
		return
	}

	if err := h.systemService.DeleteDiet(uint(id)); err != nil {
		if errors.Is(err, repository.ErrDietNotFound) {
			response.NotFound(c, "diet not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "diet deleted"})
}

// CreateTraining handles training creation
// POST /api/v1/treino
func (h *SystemHandler) CreateTraining(c *gin.Context) {
	var req service.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	training, err := h.systemService.CreateTraining(&req)
	if err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, training)
}

// GetTrainings handles listing all trainings
// GET /api/v1/treino
func (h *SystemHandler) GetTrainings(c *gin.Context) {
	trainings, err := h.systemService.GetTrainings()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, trainings)
}

// GetTraining handles getting a single training
// GET /api/v1/treino/:id
func (h *SystemHandler) GetTraining(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid training id")
		return
	}

	training, err := h.systemService.GetTrainingByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			response.NotFound(c, "training not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, training)
}

// UpdateTraining handles updating a training
// PUT /api/v1/treino/:id
func (h *SystemHandler) UpdateTraining(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid training id")
		return
	}

	var req service.UpdateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	training, err := h.systemService.UpdateTraining(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			response.NotFound(c, "training not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, training)
}

// DeleteTraining handles deleting a training
// DELETE /api/v1/treino/:id
func (h *SystemHandler) DeleteTraining(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid training id")
		return
	}

	if err := h.systemService.DeleteTraining(uint(id)); err != nil {
		if errors.Is(err, repository.ErrTrainingNotFound) {
			response.NotFound(c, "training not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "training deleted"})
}

// CreateMedication handles medication creation
// POST /api/v1/medicamentos
func (h *SystemHandler) CreateMedication(c *gin.Context) {
	var req service.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	medication, err := h.systemService.CreateMedication(&req)
	if err != nil {
		if errors.Is(err, repository.ErrSystemNotFound) {
			response.NotFound(c, "system not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, medication)
}

// GetMedications handles listing all medications
// GET /api/v1/medicamentos
func (h *SystemHandler) GetMedications(c *gin.Context) {
	medications, err := h.systemService.GetMedications()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, medications)
}

// GetMedication handles getting a single medication
// GET /api/v1/medicamentos/:id
func (h *SystemHandler) GetMedication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid medication id")
		return
	}

	medication, err := h.systemService.GetMedicationByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			response.NotFound(c, "medication not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, medication)
}

// UpdateMedication handles updating a medication
// PUT /api/v1/medicamentos/:id
func (h *SystemHandler) UpdateMedication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid medication id")
		return
	}

	var req service.UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	medication, err := h.systemService.UpdateMedication(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			response.NotFound(c, "medication not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, medication)
}

// DeleteMedication handles deleting a medication
// DELETE /api/v1/medicamentos/:id
func (h *SystemHandler) DeleteMedication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid medication id")
		return
	}

	if err := h.systemService.DeleteMedication(uint(id)); err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			response.NotFound(c, "medication not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "medication deleted"})
}

// RegisterRoutes registers system, diet, training and medication routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	systems := rg.Group("/sistema")
	systems.Use(authMiddleware)
	{
		systems.POST("", h.CreateSystem)
		systems.GET("", h.GetSystems)
		systems.GET("/:id", h.GetSystem)
		systems.GET("/usuario/:userId", h.GetSystemByUser)
		systems.PUT("/:id", h.UpdateSystem)
		systems.DELETE("/:id", h.DeleteSystem)
	}

	diets := rg.Group("/dieta")
	diets.Use(authMiddleware)
	{
		diets.POST("", h.CreateDiet)
		diets.GET("", h.GetDiets)
		diets.GET("/:id", h.GetDiet)
		diets.PUT("/:id", h.UpdateDiet)
		diets.DELETE("/:id", h.DeleteDiet)
	}

	trainings := rg.Group("/treino")
	trainings.Use(authMiddleware)
	{
		trainings.POST("", h.CreateTraining)
		trainings.GET("", h.GetTrainings)
		trainings.GET("/:id", h.GetTraining)
		trainings.PUT("/:id", h.UpdateTraining)
		trainings.DELETE("/:id", h.DeleteTraining)
	}

	medications := rg.Group("/medicamentos")
	medications.Use(authMiddleware)
	{
		medications.POST("", h.CreateMedication)
		medications.GET("", h.GetMedications)
		medications.GET("/:id", h.GetMedication)
		medications.PUT("/:id", h.UpdateMedication)
		medications.DELETE("/:id", h.DeleteMedication)
	}
}
