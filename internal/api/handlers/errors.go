package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
)

// fail maps service errors onto status codes and writes the error response.
func fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrIllegalTransition),
		errors.Is(err, service.ErrStalePosition),
		errors.Is(err, service.ErrDuplicateVote),
		errors.Is(err, service.ErrTeamAlreadyFinished),
		errors.Is(err, service.ErrCodeCollision):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInsufficientPlayers),
		errors.Is(err, service.ErrEmptyTeam),
		errors.Is(err, service.ErrUnnamedTeam),
		errors.Is(err, service.ErrNoTeams),
		errors.Is(err, service.ErrSessionNotFinished),
		errors.Is(err, service.ErrInvalidDirection):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
