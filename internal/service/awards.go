package service

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
)

// Award is a fun end-of-game recognition handed to individual players for
// how they played, independent of the team score.
type Award struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

var (
	awardMVP = Award{
		Key: "MVP", Title: "Most Valuable Player", Emoji: "🏆",
		Description: "Most correct guesses on the team",
	}
	awardSharpshooter = Award{
		Key: "SHARPSHOOTER", Title: "Sharpshooter", Emoji: "🎯",
		Description: "Highest accuracy rate (min 5 guesses)",
	}
	awardClutch = Award{
		Key: "CLUTCH", Title: "Clutch Player", Emoji: "💪",
		Description: "Solved the final word",
	}
	awardCreative = Award{
		Key: "CREATIVE", Title: "Creative Guesser", Emoji: "🎨",
		Description: "Most unique wrong guesses",
	}
	awardWildcard = Award{
		Key: "WILDCARD", Title: "Wildcard", Emoji: "🎲",
		Description: "Most enthusiastic guesser (most total guesses)",
	}
	awardCheerleader = Award{
		Key: "CHEERLEADER", Title: "Team Cheerleader", Emoji: "📣",
		Description: "Fewest guesses but the team still moved",
	}
	awardPuzzleMaster = Award{
		Key: "PUZZLE_MASTER", Title: "Puzzle Master", Emoji: "🧩",
		Description: "Solved the most words",
	}
)

const (
	sharpshooterMinGuesses  = 5
	sharpshooterMinAccuracy = 0.7
	cheerleaderMaxShare     = 0.5
)

// playerStats aggregates one player's guess log for award assignment.
type playerStats struct {
	playerID uint
	correct  int
	total    int
	solved   []int // chain indexes of the words this player solved
	wrong    []string
}

func (s playerStats) accuracy() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.total)
}

// buildPlayerStats folds a team's guess log into per-player stats, ordered
// by each player's first submission so award ties resolve deterministically.
func buildPlayerStats(guesses []models.Guess) []playerStats {
	byPlayer := make(map[uint]*playerStats)
	var order []uint
	for _, g := range guesses {
		st, ok := byPlayer[g.PlayerID]
		if !ok {
			st = &playerStats{playerID: g.PlayerID}
			byPlayer[g.PlayerID] = st
			order = append(order, g.PlayerID)
		}
		st.total++
		if g.Correct {
			st.correct++
			target := g.Position - 1
			if g.Direction == models.DirectionForward {
				target = g.Position + 1
			}
			st.solved = append(st.solved, target)
		} else {
			st.wrong = append(st.wrong, g.Word)
		}
	}

	stats := make([]playerStats, 0, len(order))
	for _, id := range order {
		stats = append(stats, *byPlayer[id])
	}
	return stats
}

// assignAwards hands out up to a few awards per player. Every player in
// stats gets an entry in the result, possibly empty; ties go to whoever
// guessed first.
func assignAwards(stats []playerStats, chainLen int) map[uint][]Award {
	awards := make(map[uint][]Award, len(stats))
	for _, s := range stats {
		awards[s.playerID] = nil
	}
	if len(stats) == 0 {
		return awards
	}

	grant := func(playerID uint, a Award) {
		awards[playerID] = append(awards[playerID], a)
	}

	var mvpID uint
	maxCorrect := 0
	for _, s := range stats {
		if s.correct > maxCorrect {
			maxCorrect = s.correct
			mvpID = s.playerID
		}
	}
	hasMVP := maxCorrect > 0
	if hasMVP {
		grant(mvpID, awardMVP)
	}

	var sharpest *playerStats
	for i := range stats {
		s := &stats[i]
		if s.total < sharpshooterMinGuesses {
			continue
		}
		if sharpest == nil || s.accuracy() > sharpest.accuracy() {
			sharpest = s
		}
	}
	if sharpest != nil && sharpest.accuracy() >= sharpshooterMinAccuracy {
		grant(sharpest.playerID, awardSharpshooter)
	}

	// the chain completes at either end, so both terminals count as clutch
	for _, s := range stats {
		clutch := false
		for _, idx := range s.solved {
			if idx == 0 || idx == chainLen-1 {
				clutch = true
				break
			}
		}
		if clutch {
			grant(s.playerID, awardClutch)
			break
		}
	}

	var creativeID uint
	maxWrong := 0
	for _, s := range stats {
		if len(s.wrong) > maxWrong {
			maxWrong = len(s.wrong)
			creativeID = s.playerID
		}
	}
	if maxWrong > 0 {
		grant(creativeID, awardCreative)
	}

	var wildcardID uint
	maxTotal := 0
	for _, s := range stats {
		if s.total > maxTotal {
			maxTotal = s.total
			wildcardID = s.playerID
		}
	}
	if maxTotal > 0 && !(hasMVP && wildcardID == mvpID) {
		grant(wildcardID, awardWildcard)
	}

	cheerID := stats[0].playerID
	minTotal := stats[0].total
	for _, s := range stats[1:] {
		if s.total < minTotal {
			minTotal = s.total
			cheerID = s.playerID
		}
	}
	if minTotal > 0 && float64(minTotal) < float64(maxTotal)*cheerleaderMaxShare {
		grant(cheerID, awardCheerleader)
	}

	maxSolved := 0
	for _, s := range stats {
		if len(s.solved) > maxSolved {
			maxSolved = len(s.solved)
		}
	}
	if maxSolved > 0 {
		for _, s := range stats {
			if len(s.solved) == maxSolved && !(hasMVP && s.playerID == mvpID) {
				grant(s.playerID, awardPuzzleMaster)
			}
		}
	}

	return awards
}
