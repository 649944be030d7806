package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
)

// VoteHandler handles the superlatives voting mode.
type VoteHandler struct {
	votes *service.VoteLedger
}

func NewVoteHandler(votes *service.VoteLedger) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// SubmitVote records the calling player's ballot for a question.
func (h *VoteHandler) SubmitVote(c *gin.Context) {
	player := c.MustGet("player").(*models.Player)

	questionID, err := strconv.ParseUint(c.Param("questionID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question ID"})
		return
	}

	var input struct {
		Choice string `json:"choice" binding:"required"`
		Revote bool   `json:"revote"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.votes.SubmitVote(uint(questionID), player.ID, input.Choice, input.Revote)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, vote)
}

// GetResults tallies a question's ballots.
func (h *VoteHandler) GetResults(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("questionID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question ID"})
		return
	}
	revote := c.Query("revote") == "true"

	tally, err := h.votes.Tally(uint(questionID), revote)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}
