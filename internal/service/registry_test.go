package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/utils"
)

func TestCreateSessionStartsInAssembly(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session, err := e.registry.CreateSession("friday night", 3)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseAssembly, session.Phase)
	assert.Equal(t, 3, session.NumTeams)
	assert.Len(t, session.Code, utils.SessionCodeLength)

	got, err := e.registry.GetSession(session.Code)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestCreateSessionRejectsZeroTeams(t *testing.T) {
	t.Parallel()

	e := newEnv()
	_, err := e.registry.CreateSession("broken", 0)
	assert.ErrorIs(t, err, ErrNoTeams)
}

func TestGetSessionUnknownCode(t *testing.T) {
	t.Parallel()

	e := newEnv()
	_, err := e.registry.GetSession("ZZZZZZ")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestJoinIssuesUniqueTokens(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session, err := e.registry.CreateSession("tokens", 1)
	require.NoError(t, err)

	alice, err := e.registry.Join(session.Code, "alice")
	require.NoError(t, err)
	bob, err := e.registry.Join(session.Code, "bob")
	require.NoError(t, err)

	assert.NotEmpty(t, alice.Token)
	assert.NotEqual(t, alice.Token, bob.Token)
	assert.False(t, alice.Connected, "joining does not imply a live channel")

	roster, err := e.players.FindBySession(session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "alice", roster[0].Name, "roster keeps join order")
}

func TestJoinOnlyDuringAssembly(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session, _ := startActiveSession(t, e, 1, 1)

	_, err := e.registry.Join(session.Code, "latecomer")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestListSessionsExcludesFinished(t *testing.T) {
	t.Parallel()

	e := newEnv()
	open, err := e.registry.CreateSession("open", 1)
	require.NoError(t, err)
	done, _ := startActiveSession(t, e, 1, 1)
	require.NoError(t, e.game.FinishGame(done.Code))

	active, err := e.registry.ListSessions()
	require.NoError(t, err)

	codes := make([]string, 0, len(active))
	for _, s := range active {
		codes = append(codes, s.Code)
	}
	assert.Contains(t, codes, open.Code)
	assert.NotContains(t, codes, done.Code)
}

func TestTeardownDropsSessionAndConnections(t *testing.T) {
	t.Parallel()

	e := newEnv()
	session, err := e.registry.CreateSession("doomed", 1)
	require.NoError(t, err)
	player := e.addPlayer(session.Code, "casualty")

	require.True(t, e.directory.IsConnected(player.ID))
	require.NoError(t, e.registry.Teardown(session.Code))

	assert.False(t, e.directory.IsConnected(player.ID))
	_, err = e.registry.GetSession(session.Code)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTeardownUnknownSession(t *testing.T) {
	t.Parallel()

	e := newEnv()
	err := e.registry.Teardown("NOPE42")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
