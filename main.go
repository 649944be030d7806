package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/api"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/puzzle"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/utils"
	"github.com/NADEE-MJ/raddle.teams-sub001/pkg/config"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.Host{},
		&models.Session{},
		&models.Player{},
		&models.Team{},
		&models.Guess{},
		&models.Vote{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate database")
	}

	repos := repository.NewRepositories(db)
	loader := puzzle.NewLoader(cfg.Puzzles.Dir)
	services := service.NewServices(repos, loader)

	r := gin.Default()
	api.SetupRoutes(r, services)

	log.Info().Str("address", cfg.Server.Address).Msg("server starting")
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
