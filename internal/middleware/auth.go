package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/utils"
)

// HostAuth validates the Bearer token issued at host login and puts the host
// ID on the context.
func HostAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("hostID", claims.HostID)
		c.Next()
	}
}

// PlayerAuth resolves the player identity token handed out on join. The
// verified player model lands on the context for handlers to use.
func PlayerAuth(players repository.PlayerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Player-Token")
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "player token is required"})
			c.Abort()
			return
		}

		player, err := players.FindByToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player token"})
			c.Abort()
			return
		}

		c.Set("player", player)
		c.Next()
	}
}
