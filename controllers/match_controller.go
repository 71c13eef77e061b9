package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beer-pong-backend/models"
	"beer-pong-backend/services"
)

// MatchService is the interface for the service the match endpoints sit on.
type MatchService interface {
	Create(ctx context.Context, req *models.CreateMatchRequest) (string, error)
	List(ctx context.Context, limit int64) ([]models.Match, error)
	Get(ctx context.Context, matchID string) (*models.Match, error)
	RecordHit(ctx context.Context, matchID string, req *models.HitRequest) (*models.HitResponse, error)
	Reset(ctx context.Context, matchID string) error
}

type MatchController struct {
	matchService MatchService
}

func NewMatchController(matchService MatchService) *MatchController {
	return &MatchController{
		matchService: matchService,
	}
}

func (c *MatchController) CreateMatch(ctx *gin.Context) {
	var req models.CreateMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := c.matchService.Create(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (c *MatchController) ListMatches(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		limit = services.DefaultListLimit
	}

	matches, err := c.matchService.List(ctx.Request.Context(), limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch matches"})
		return
	}

	ctx.JSON(http.StatusOK, matches)
}

func (c *MatchController) GetMatch(ctx *gin.Context) {
	match, err := c.matchService.Get(ctx.Request.Context(), ctx.Param("match_id"))
	if err != nil {
		c.matchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, match)
}

func (c *MatchController) RecordHit(ctx *gin.Context) {
	var req models.HitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.matchService.RecordHit(ctx.Request.Context(), ctx.Param("match_id"), &req)
	if err != nil {
		c.matchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *MatchController) ResetMatch(ctx *gin.Context) {
	if err := c.matchService.Reset(ctx.Request.Context(), ctx.Param("match_id")); err != nil {
		c.matchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (c *MatchController) matchError(ctx *gin.Context, err error) {
	switch err {
	case services.ErrInvalidMatchID:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
	case services.ErrMatchNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
	case services.ErrMatchFinished:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Match already finished"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
