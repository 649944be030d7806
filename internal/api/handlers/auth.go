package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/utils"
)

// AuthHandler handles host account registration and login.
type AuthHandler struct {
	hostService *service.HostService
}

func NewAuthHandler(hostService *service.HostService) *AuthHandler {
	return &AuthHandler{hostService: hostService}
}

type credentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a host account.
func (h *AuthHandler) Register(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	host := models.Host{
		Username: input.Username,
		Password: string(hashedPassword),
	}

	if err := h.hostService.CreateHost(&host); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create host"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "host registered"})
}

// Login checks host credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	host, err := h.hostService.GetHostByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(host.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(host.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
