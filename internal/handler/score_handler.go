package handler

import (
	"errors"
	"strconv"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// ScoreHandler handles score API requests
type ScoreHandler struct {
	scoreService *service.ScoreService
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// CreateScore handles score creation
// POST /api/v1/pontuacoes
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	var req service.CreateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	score, err := h.scoreService.CreateScore(&req)
	if err != nil {
		if errors.Is(err, service.ErrScoreExists) {
			response.Conflict(c, "cycle already has a score")
			return
		}
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, score)
}

// GetScores handles listing all scores
// GET /api/v1/pontuacoes
func (h *ScoreHandler) GetScores(c *gin.Context) {
	scores, err := h.scoreService.GetScores()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, scores)
}

// GetScore handles getting a single score
// GET /api/v1/pontuacoes/:id
func (h *ScoreHandler) GetScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid score id")
		return
	}

	score, err := h.scoreService.GetScoreByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrScoreNotFound) {
			response.NotFound(c, "score not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, score)
}

// GetScoresByUser handles listing a user's scores
// GET /api/v1/pontuacoes/usuario/:userId
func (h *ScoreHandler) GetScoresByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	scores, err := h.scoreService.GetScoresByUserID(uint(userID))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, scores)
}

// UpdateScore handles updating a score
// PUT /api/v1/pontuacoes/:id
func (h *ScoreHandler) UpdateScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid score id")
		return
	}

	var req service.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	score, err := h.scoreService.UpdateScore(uint(id), &req)
	if err != nil {
		if errors.Is(err, repository.ErrScoreNotFound) {
			response.NotFound(c, "score not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, score)
}

// RecalculateScore handles rebuilding a cycle's score from its check-ins
// POST /api/v1/pontuacoes/recalcular/:cicloId
func (h *ScoreHandler) RecalculateScore(c *gin.Context) {
	cycleID, err := strconv.ParseUint(c.Param("cicloId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid cycle id")
		return
	}

	score, err := h.scoreService.RecalculateScore(uint(cycleID))
	if err != nil {
		if errors.Is(err, repository.ErrCycleNotFound) {
			response.NotFound(c, "cycle not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, score)
}

// DeleteScore handles deleting a score
// DELETE /api/v1/pontuacoes/:id
func (h *ScoreHandler) DeleteScore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid score id")
		return
	}

	if err := h.scoreService.DeleteScore(uint(id)); err != nil {
		if errors.Is(err, repository.ErrScoreNotFound) {
			response.NotFound(c, "score not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "score deleted"})
}

// RegisterRoutes registers score routes
func (h *ScoreHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	scores := rg.Group("/pontuacoes")
	scores.Use(authMiddleware)
	{
		scores.POST("", h.CreateScore)
		scores.GET("", h.GetScores)
		scores.GET("/:id", h.GetScore)
		scores.GET("/usuario/:userId", h.GetScoresByUser)
		scores.PUT("/:id", h.UpdateScore)
		scores.DELETE("/:id", h.DeleteScore)
		scores.POST("/recalcular/:cicloId", h.RecalculateScore)
	}
}
