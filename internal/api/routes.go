package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/api/handlers"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/middleware"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	authHandler := handlers.NewAuthHandler(services.Host)
	sessionHandler := handlers.NewSessionHandler(services.Registry)
	gameHandler := handlers.NewGameHandler(services.Game, services.Progression)
	voteHandler := handlers.NewVoteHandler(services.Votes)
	wsHandler := handlers.NewWebSocketHandler(services)

	api := r.Group("/api")

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	// public routes
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/sessions", sessionHandler.ListSessions)
		api.GET("/sessions/:code", sessionHandler.GetSession)
		api.POST("/sessions/:code/join", sessionHandler.JoinSession)
	}

	// host-only lifecycle routes
	host := api.Group("/")
	host.Use(middleware.HostAuth())
	{
		host.POST("/sessions", sessionHandler.CreateSession)
		host.DELETE("/sessions/:code", sessionHandler.TeardownSession)
		host.POST("/sessions/:code/teams", gameHandler.FormTeams)
		host.POST("/sessions/:code/naming", gameHandler.BeginNaming)
		host.POST("/sessions/:code/start", gameHandler.StartGame)
		host.POST("/sessions/:code/end", gameHandler.EndGame)
	}

	// player routes, authenticated by the token handed out on join
	player := api.Group("/")
	player.Use(middleware.PlayerAuth(services.Players))
	{
		player.POST("/sessions/:code/teams/:teamID/name", gameHandler.NameTeam)
		player.POST("/guess", gameHandler.SubmitGuess)
		player.POST("/hint", gameHandler.UseHint)
		player.POST("/questions/:questionID/vote", voteHandler.SubmitVote)
		player.GET("/questions/:questionID/results", voteHandler.GetResults)
		player.GET("/sessions/:code/ws", wsHandler.HandleWebSocket)
	}
}
