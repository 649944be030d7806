package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
)

// GameHandler handles phase transitions and gameplay actions.
type GameHandler struct {
	game        *service.GameService
	progression *service.ProgressionEngine
}

func NewGameHandler(game *service.GameService, progression *service.ProgressionEngine) *GameHandler {
	return &GameHandler{game: game, progression: progression}
}

// FormTeams partitions connected players into teams (host only).
func (h *GameHandler) FormTeams(c *gin.Context) {
	if err := h.game.FormTeams(c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "teams formed"})
}

// BeginNaming opens the team naming phase (host only).
func (h *GameHandler) BeginNaming(c *gin.Context) {
	if err := h.game.BeginNaming(c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "naming phase started"})
}

// NameTeam sets one team's name.
func (h *GameHandler) NameTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("teamID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.game.NameTeam(c.Param("code"), uint(teamID), input.Name); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team named"})
}

// StartGame binds a puzzle and begins active play (host only).
func (h *GameHandler) StartGame(c *gin.Context) {
	var input struct {
		Puzzle string `json:"puzzle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.game.StartGame(c.Param("code"), input.Puzzle); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game started"})
}

// EndGame terminates active play and triggers scoring (host only).
func (h *GameHandler) EndGame(c *gin.Context) {
	if err := h.game.FinishGame(c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game finished"})
}

// SubmitGuess applies one guess for the calling player's team.
func (h *GameHandler) SubmitGuess(c *gin.Context) {
	player := c.MustGet("player").(*models.Player)

	var input struct {
		Position  *int                  `json:"position" binding:"required"`
		Text      string                `json:"text" binding:"required"`
		Direction models.GuessDirection `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.progression.SubmitGuess(player, *input.Position, input.Text, input.Direction)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UseHint bumps the calling player's team hint counter.
func (h *GameHandler) UseHint(c *gin.Context) {
	player := c.MustGet("player").(*models.Player)

	team, err := h.progression.UseHint(player)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hints_used": team.HintsUsed})
}
