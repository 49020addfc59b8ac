package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// CycleHandler handles cycle and cycle day API requests
type CycleHandler struct {
	cycleService *service.CycleService
}

// NewCycleHandler creates a new CycleHandler
func NewCycleHandler(cycleService *service.CycleService) *CycleHandler {
	return &CycleHandler{
		cycleService: cycleService,
	}
}

// CreateCycle handles cycle creation
// POST /api/v1/ciclo
func (h *CycleHandler) CreateCycle(c *gin.Context) {
	var req service.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cycle, err := h.cycleService.CreateCycle(&req)
	if err != nil {
		if errors.Is(err, service.ErrCycleExists) {
			response.Conflict(c, "cycle already exists for this user, number and date")
			return
		}
		if errors.Is(err, service.ErrActiveCycleExists) {
			response.Conflict(c, "user already has an active cycle")
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, cycle)
}

// GetCycles handles listing all cycles
// GET /api/v1/ciclo
func (h *CycleHandler) GetCycles(c *gin.Context) {
	cycles, err := h.cycleService.GetCycles()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cycles)
}

// GetCycle handles getting a single cycle
// GET /api/v1/ciclo/:id
func (h *CycleHandler) GetCycle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle id")
		return
	}

	cycle, err := h.cycleService.GetCycleByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cycle)
}

// GetCyclesByUser handles listing a user's cycles
// GET /api/v1/ciclo/usuario/:userId
func (h *CycleHandler) GetCyclesByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	cycles, err := h.cycleService.GetCyclesByUserID(uint(userID))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cycles)
}

// GetActiveCycleByUser handles getting a user's active cycle
// GET /api/v1/ciclo/usuario/:userId/ativo
func (h *CycleHandler) GetActiveCycleByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	cycle, err := h.cycleService.GetActiveCycleByUserID(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "no active cycle")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cycle)
}

// GetCycleDaysForCycle handles listing the days of a cycle
// GET /api/v1/ciclo/:id/dias
func (h *CycleHandler) GetCycleDaysForCycle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle id")
		return
	}

	days, err := h.cycleService.GetDaysByCycleID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, days)
}

// UpdateCycle handles updating a cycle
// PUT /api/v1/ciclo/:id
func (h *CycleHandler) UpdateCycle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle id")
		return
	}

	var req service.UpdateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cycle, err := h.cycleService.UpdateCycle(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cycle)
}

// FinalizeCycle handles finalizing a cycle
// POST /api/v1/ciclo/:id/finalizar
func (h *CycleHandler) FinalizeCycle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle id")
		return
	}

	cycle, err := h.cycleService.FinalizeCycle(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, cycle)
}

// DeleteCycle handles deleting a cycle
// DELETE /api/v1/ciclo/:id
func (h *CycleHandler) DeleteCycle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle id")
		return
	}

	if err := h.cycleService.DeleteCycle(uint(id)); err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "cycle deleted"})
}

// CreateCycleDay handles cycle day creation
// POST /api/v1/diaciclo
func (h *CycleHandler) CreateCycleDay(c *gin.Context) {
	var req service.CreateCycleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	day, err := h.cycleService.CreateCycleDay(&req)
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, day)
}

// GetCycleDays handles listing all cycle days
// GET /api/v1/diaciclo
func (h *CycleHandler) GetCycleDays(c *gin.Context) {
	days, err := h.cycleService.GetCycleDays()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, days)
}

// GetCycleDay handles getting a single cycle day
// GET /api/v1/diaciclo/:id
func (h *CycleHandler) GetCycleDay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle day id")
		return
	}

	day, err := h.cycleService.GetCycleDayByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrCycleDayNotFound) {
			response.NotFound(c, "cycle day not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, day)
}

// UpdateCycleDay handles updating a cycle day
// PUT /api/v1/diaciclo/:id
func (h *CycleHandler) UpdateCycleDay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle day id")
		return
	}

	var req service.UpdateCycleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	day, err := h.cycleService.UpdateCycleDay(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrCycleDayNotFound) {
			response.NotFound(c, "cycle day not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, day)
}

// DeleteCycleDay handles deleting a cycle day
// DELETE /api/v1/diaciclo/:id
func (h *CycleHandler) DeleteCycleDay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle day id")
		return
	}

	if err := h.cycleService.DeleteCycleDay(uint(id)); err != nil {
		if errors.Is(err, repository.ErrCycleDayNotFound) {
			response.NotFound(c, "cycle day not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "cycle day deleted"})
}

// RegisterRoutes registers cycle and cycle day routes
func (h *CycleHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	cycles := rg.Group("/ciclo")
	cycles.Use(authMiddleware)
	{
		cycles.POST("", h.CreateCycle)
		cycles.GET("", h.GetCycles)
		cycles.GET("/:id", h.GetCycle)
		cycles.GET("/:id/dias", h.GetCycleDaysForCycle)
		cycles.GET("/usuario/:userId", h.GetCyclesByUser)
		cycles.GET("/usuario/:userId/ativo", h.GetActiveCycleByUser)
		cycles.PUT("/:id", h.UpdateCycle)
		cycles.DELETE("/:id", h.DeleteCycle)
		cycles.POST("/:id/finalizar", h.FinalizeCycle)
	}

	days := rg.Group("/diaciclo")
	days.Use(authMiddleware)
	{
		days.POST("", h.CreateCycleDay)
		days.GET("", h.GetCycleDays)
		days.GET("/:id", h.GetCycleDay)
		days.PUT("/:id", h.UpdateCycleDay)
		days.DELETE("/:id", h.DeleteCycleDay)
	}
}
