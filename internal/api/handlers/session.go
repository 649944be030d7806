package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
)

// SessionHandler handles session lifecycle requests.
type SessionHandler struct {
	registry *service.SessionRegistry
}

func NewSessionHandler(registry *service.SessionRegistry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

// CreateSession creates a session in the assembly phase.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		NumTeams int    `json:"num_teams" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.registry.CreateSession(input.Name, input.NumTeams)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions returns every session that has not finished.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.registry.ListSessions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession returns one session by join code.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.registry.GetSession(c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// JoinSession adds a player to the roster and returns their identity token.
func (h *SessionHandler) JoinSession(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.registry.Join(c.Param("code"), input.Name)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"player": player,
		"token":  player.Token,
	})
}

// TeardownSession destroys a session.
func (h *SessionHandler) TeardownSession(c *gin.Context) {
	if err := h.registry.Teardown(c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session torn down"})
}
