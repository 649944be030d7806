package service

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
)

// dnfCapRatio caps did-not-finish credit below the worst finisher: a DNF
// team can earn at most 75% of the lowest finishing score.
const dnfCapRatio = 0.75

// ScoringEngine turns placement and progress into final points.
type ScoringEngine struct {
	teamRepo  repository.TeamRepository
	guessRepo repository.GuessRepository
	content   ContentStore
	directory *ConnectionDirectory
}

func NewScoringEngine(teamRepo repository.TeamRepository, guessRepo repository.GuessRepository, content ContentStore, directory *ConnectionDirectory) *ScoringEngine {
	return &ScoringEngine{
		teamRepo:  teamRepo,
		guessRepo: guessRepo,
		content:   content,
		directory: directory,
	}
}

// CalculatePoints computes one team's final points.
//
// Finishers score total_teams - placement + 1, with placement ranked by
// completion order. Teams that did not finish get a fraction of the worst
// finisher's points scaled by completion percentage, capped at 75% of it,
// always rounded up and never below 1. When no team finished,
// worstFinishedPoints is totalTeams by fixed policy; callers must pass it
// that way.
func CalculatePoints(placement, totalTeams int, completionPercentage float64, completed bool, worstFinishedPoints int) int {
	if completed {
		return totalTeams - placement + 1
	}
	base := float64(worstFinishedPoints)
	cap := base * dnfCapRatio
	points := int(math.Ceil(math.Min(cap, base*completionPercentage)))
	if points < 1 {
		return 1
	}
	return points
}

// Finalize runs the single scoring pass over a finished session and stores
// each team's points. It is invalid before the session finishes or on a
// session with no teams.
func (s *ScoringEngine) Finalize(session *models.Session) error {
	if session.Phase != models.PhaseFinished {
		return ErrSessionNotFinished
	}

	teams, err := s.teamRepo.FindBySession(session.ID)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		return ErrNoTeams
	}

	p, err := s.content.Load(session.PuzzleName)
	if err != nil {
		return err
	}

	var finishers []*models.Team
	for i := range teams {
		if teams[i].Completed() {
			finishers = append(finishers, &teams[i])
		}
	}
	sort.SliceStable(finishers, func(i, j int) bool {
		return finishers[i].CompletedAt.Before(*finishers[j].CompletedAt)
	})

	total := len(teams)
	worstFinishedPoints := total // fixed policy when nobody finished
	for placement, team := range finishers {
		team.Score = CalculatePoints(placement+1, total, 1.0, true, 0)
		worstFinishedPoints = team.Score
	}

	start := p.StartPosition()
	chainLen := p.Length()
	for i := range teams {
		team := &teams[i]
		if team.Completed() {
			continue
		}
		pct := completionPercentage(team.Cursor, start, chainLen)
		team.Score = CalculatePoints(0, total, pct, false, worstFinishedPoints)
	}

	for i := range teams {
		if err := s.teamRepo.Update(&teams[i]); err != nil {
			return err
		}
	}

	log.Info().Str("session", session.Code).Int("teams", total).Int("finishers", len(finishers)).Msg("scores finalized")
	s.directory.Broadcast(Event{Type: EventScoresFinal, Data: map[string]any{
		"session": session.Code,
		"teams":   teams,
	}})

	s.grantAwards(teams, chainLen)
	return nil
}

// grantAwards hands out per-player awards from each team's guess log. A
// failed lookup skips that team; awards never fail the scoring pass.
func (s *ScoringEngine) grantAwards(teams []models.Team, chainLen int) {
	for i := range teams {
		team := &teams[i]
		guesses, err := s.guessRepo.FindByTeam(team.ID)
		if err != nil {
			log.Error().Err(err).Uint("team_id", team.ID).Msg("load guess log for awards")
			continue
		}
		granted := assignAwards(buildPlayerStats(guesses), chainLen)
		if len(granted) == 0 {
			continue
		}
		s.directory.BroadcastToTeam(team.ID, Event{Type: EventPlayerAwards, Data: map[string]any{
			"team_id": team.ID,
			"awards":  granted,
		}})
	}
}

// completionPercentage is the cursor's distance traveled from the anchor
// over the chain length, clamped to [0,1].
func completionPercentage(cursor, start, chainLen int) float64 {
	if chainLen <= 0 {
		return 0
	}
	traveled := cursor - start
	if traveled < 0 {
		traveled = -traveled
	}
	pct := float64(traveled) / float64(chainLen)
	if pct > 1 {
		return 1
	}
	return pct
}
