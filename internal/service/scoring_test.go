package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
)

func TestCalculatePoints(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc       string
		placement  int
		totalTeams int
		completion float64
		completed  bool
		worst      int
		want       int
	}{
		{
			desc:      "first place",
			placement: 1, totalTeams: 5, completion: 1.0, completed: true, worst: 2,
			want: 5,
		},
		{
			desc:      "second place",
			placement: 2, totalTeams: 5, completion: 1.0, completed: true, worst: 2,
			want: 4,
		},
		{
			desc:      "last place finisher",
			placement: 5, totalTeams: 5, completion: 1.0, completed: true, worst: 1,
			want: 1,
		},
		{
			desc:      "dnf at half progress",
			placement: 3, totalTeams: 5, completion: 0.5, completed: false, worst: 4,
			want: 2,
		},
		{
			desc:      "dnf hits the 75 percent cap",
			placement: 3, totalTeams: 5, completion: 0.8, completed: false, worst: 4,
			want: 3,
		},
		{
			desc:      "dnf just reaches the cap",
			placement: 3, totalTeams: 5, completion: 0.7, completed: false, worst: 4,
			want: 3,
		},
		{
			desc:      "dnf rounds fractional credit up",
			placement: 3, totalTeams: 5, completion: 0.67, completed: false, worst: 4,
			want: 3,
		},
		{
			desc:      "dnf with zero progress floors at one point",
			placement: 3, totalTeams: 5, completion: 0.0, completed: false, worst: 4,
			want: 1,
		},
		{
			desc:      "dnf floor regardless of placement",
			placement: 5, totalTeams: 5, completion: 0.01, completed: false, worst: 4,
			want: 1,
		},
		{
			desc:      "nobody finished so worst defaults to team count",
			placement: 1, totalTeams: 5, completion: 0.6, completed: false, worst: 5,
			want: 3,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			got := CalculatePoints(tc.placement, tc.totalTeams, tc.completion, tc.completed, tc.worst)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculatePointsPlacementOrdering(t *testing.T) {
	t.Parallel()

	// finishing earlier always pays more, given identical team count
	const total = 5
	prev := total + 1
	for placement := 1; placement <= total; placement++ {
		points := CalculatePoints(placement, total, 1.0, true, 1)
		assert.Less(t, points, prev, "placement %d", placement)
		prev = points
	}
	assert.Equal(t, total, CalculatePoints(1, total, 1.0, true, 1))
	assert.Equal(t, 1, CalculatePoints(total, total, 1.0, true, 1))
}

func TestCalculatePointsFullProgressIsNotAFinisher(t *testing.T) {
	t.Parallel()

	// completion=1.0 alone never routes through the finisher formula; only
	// the completed flag does
	dnf := CalculatePoints(1, 5, 1.0, false, 4)
	assert.Equal(t, 3, dnf, "full-progress DNF stays under the cap")
	finisher := CalculatePoints(1, 5, 1.0, true, 4)
	assert.Equal(t, 5, finisher)
}

func TestFinalizeBeforeFinishFails(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session := &models.Session{Phase: models.PhaseActive, PuzzleName: "downtown"}
	err := e.scoring.Finalize(session)
	assert.ErrorIs(t, err, ErrSessionNotFinished)
}

func TestFinalizeWithoutTeamsFails(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session := &models.Session{Phase: models.PhaseFinished, PuzzleName: "downtown"}
	session.ID = 1
	err := e.scoring.Finalize(session)
	assert.ErrorIs(t, err, ErrNoTeams)
}

func TestFinalizeMixedFinishersAndDNF(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session := &models.Session{Phase: models.PhaseFinished, PuzzleName: "downtown", NumTeams: 3}
	require.NoError(t, e.sessions.Create(session))

	base := time.Now().UTC()
	first := base.Add(1 * time.Minute)
	second := base.Add(2 * time.Minute)

	// chain is 5 words anchored at index 2; team3 moved one step
	team1 := &models.Team{SessionID: session.ID, Name: "early", Cursor: 0, CompletedAt: &first}
	team2 := &models.Team{SessionID: session.ID, Name: "late", Cursor: 4, CompletedAt: &second}
	team3 := &models.Team{SessionID: session.ID, Name: "stuck", Cursor: 3}
	for _, team := range []*models.Team{team1, team2, team3} {
		require.NoError(t, e.teams.Create(team))
	}

	require.NoError(t, e.scoring.Finalize(session))

	got1, _ := e.teams.FindByID(team1.ID)
	got2, _ := e.teams.FindByID(team2.ID)
	got3, _ := e.teams.FindByID(team3.ID)

	assert.Equal(t, 3, got1.Score, "first finisher takes total teams")
	assert.Equal(t, 2, got2.Score)
	// DNF: worst=2, traveled 1 of 5 -> ceil(min(1.5, 0.4)) = 1
	assert.Equal(t, 1, got3.Score)
}

func TestFinalizeGrantsAwardsToTheTeam(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session := &models.Session{Phase: models.PhaseFinished, PuzzleName: "downtown", NumTeams: 1}
	require.NoError(t, e.sessions.Create(session))

	done := time.Now().UTC()
	team := &models.Team{SessionID: session.ID, Name: "winners", Cursor: 4, CompletedAt: &done}
	require.NoError(t, e.teams.Create(team))

	// player 1 solved both forward words; the log feeds the award pass
	for _, g := range []models.Guess{
		{SessionID: session.ID, TeamID: team.ID, PlayerID: 1, Position: 2, Word: "UP", Direction: models.DirectionForward, Correct: true},
		{SessionID: session.ID, TeamID: team.ID, PlayerID: 1, Position: 3, Word: "TOWN", Direction: models.DirectionForward, Correct: true},
	} {
		g := g
		require.NoError(t, e.guesses.Create(&g))
	}

	client := e.directory.Register(1, &fakeConn{})
	e.directory.AssignTeam(1, team.ID)

	require.NoError(t, e.scoring.Finalize(session))

	assert.Equal(t, EventScoresFinal, drainOne(t, client).Type)
	assert.Equal(t, EventPlayerAwards, drainOne(t, client).Type)
}

func TestFinalizeNoFinishersWorstDefaultsToTotal(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session := &models.Session{Phase: models.PhaseFinished, PuzzleName: "downtown", NumTeams: 2}
	require.NoError(t, e.sessions.Create(session))

	// traveled 2 of 5 from the anchor
	team1 := &models.Team{SessionID: session.ID, Name: "a", Cursor: 4}
	team2 := &models.Team{SessionID: session.ID, Name: "b", Cursor: 2}
	require.NoError(t, e.teams.Create(team1))
	require.NoError(t, e.teams.Create(team2))

	require.NoError(t, e.scoring.Finalize(session))

	got1, _ := e.teams.FindByID(team1.ID)
	got2, _ := e.teams.FindByID(team2.ID)
	// worst defaults to 2: ceil(min(1.5, 2*0.4)) = 1
	assert.Equal(t, 1, got1.Score)
	assert.Equal(t, 1, got2.Score, "zero progress still scores one point")
}
