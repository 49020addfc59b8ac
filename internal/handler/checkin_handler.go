package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// CheckinHandler handles day zero and daily check-in API requests
type CheckinHandler struct {
	checkinService *service.CheckinService
}

// NewCheckinHandler creates a new CheckinHandler
func NewCheckinHandler(checkinService *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

// CreateDayZero handles day zero creation
// POST /api/v1/dia0
func (h *CheckinHandler) CreateDayZero(c *gin.Context) {
	var req service.CreateDayZeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dayZero, err := h.checkinService.CreateDayZero(&req)
	if err != nil {
		if errors.Is(err, service.ErrDayZeroExists) {
			response.Conflict(c, "cycle already has a day zero record")
			return
		}
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, dayZero)
}

// GetDayZeros handles listing all day zero records
// GET /api/v1/dia0
func (h *CheckinHandler) GetDayZeros(c *gin.Context) {
	dayZeros, err := h.checkinService.GetDayZeros()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, dayZeros)
}

// GetDayZero handles getting a single day zero record
// GET /api/v1/dia0/:id
func (h *CheckinHandler) GetDayZero(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid day zero id")
		return
	}

	dayZero, err := h.checkinService.GetDayZeroByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrDayZeroNotFound) {
			response.NotFound(c, "day zero not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, dayZero)
}

// UpdateDayZero handles updating a day zero record
// PUT /api/v1/dia0/:id
func (h *CheckinHandler) UpdateDayZero(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid day zero id")
		return
	}

	var req service.UpdateDayZeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dayZero, err := h.checkinService.UpdateDayZero(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDayZeroNotFound) {
			response.NotFound(c, "day zero not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, dayZero)
}

// DeleteDayZero handles deleting a day zero record
// DELETE /api/v1/dia0/:id
func (h *CheckinHandler) DeleteDayZero(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid day zero id")
		return
	}

	if err := h.checkinService.DeleteDayZero(uint(id)); err != nil {
		if errors.Is(err, repository.ErrDayZeroNotFound) {
			response.NotFound(c, "day zero not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "day zero deleted"})
}

// CreateDaily handles daily check-in creation
// POST /api/v1/daily
func (h *CheckinHandler) CreateDaily(c *gin.Context) {
	var req service.CreateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	daily, err := h.checkinService.CreateDaily(&req)
	if err != nil {
		if errors.Is(err, service.ErrDailyExists) {
			response.Conflict(c, "cycle day already has a daily check-in")
			return
		}
		if errors.Is(err, repository.ErrCycleDayNotFound) {
			response.NotFound(c, "cycle day not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, daily)
}

// GetDailies handles listing all daily check-ins
// GET /api/v1/daily
func (h *CheckinHandler) GetDailies(c *gin.Context) {
	dailies, err := h.checkinService.GetDailies()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, dailies)
}

// GetDaily handles getting a single daily check-in
// GET /api/v1/daily/:id
func (h *CheckinHandler) GetDaily(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid daily id")
		return
	}

	daily, err := h.checkinService.GetDailyByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrDailyNotFound) {
			response.NotFound(c, "daily not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, daily)
}

// GetDailyByCycleDay handles getting the check-in of a cycle day
// GET /api/v1/daily/diaciclo/:diaCicloId
func (h *CheckinHandler) GetDailyByCycleDay(c *gin.Context) {
	cycleDayID, err := strconv.ParseUint(c.Param("diaCicloId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle day id")
		return
	}

	daily, err := h.checkinService.GetDailyByCycleDayID(uint(cycleDayID))
	if err != nil {
		if errors.Is(err, repository.ErrDailyNotFound) {
			response.NotFound(c, "daily not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, daily)
}

// UpdateDaily handles updating a daily check-in
// PUT /api/v1/daily/:id
func (h *CheckinHandler) UpdateDaily(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid daily id")
		return
	}

	var req service.UpdateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	daily, err := h.checkinService.UpdateDaily(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDailyNotFound) {
			response.NotFound(c, "daily not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, daily)
}

// DeleteDaily handles deleting a daily check-in
// DELETE /api/v1/daily/:id
func (h *CheckinHandler) DeleteDaily(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid daily id")
		return
	}

	if err := h.checkinService.DeleteDaily(uint(id)); err != nil {
		if errors.Is(err, repository.ErrDailyNotFound) {
			response.NotFound(c, "daily not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "daily deleted"})
}

// RegisterRoutes registers day zero and daily routes
func (h *CheckinHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	dayZeros := rg.Group("/dia0")
	dayZeros.Use(authMiddleware)
	{
		dayZeros.POST("", h.CreateDayZero)
		dayZeros.GET("", h.GetDayZeros)
		dayZeros.GET("/:id", h.GetDayZero)
		dayZeros.PUT("/:id", h.UpdateDayZero)
		dayZeros.DELETE("/:id", h.DeleteDayZero)
	}

	dailies := rg.Group("/daily")
	dailies.Use(authMiddleware)
	{
		dailies.POST("", h.CreateDaily)
		dailies.GET("", h.GetDailies)
		dailies.GET("/:id", h.GetDaily)
		dailies.GET("/diaciclo/:diaCicloId", h.GetDailyByCycleDay)
		dailies.PUT("/:id", h.UpdateDaily)
		dailies.DELETE("/:id", h.DeleteDaily)
	}
}
