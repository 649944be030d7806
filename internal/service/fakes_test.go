package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/puzzle"
)

// In-memory repository fakes. They copy values in and out so service code
// sees the same load-mutate-save behavior the gorm repositories give it.

type fakeSessionRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: make(map[uint]models.Session)}
}

func (r *fakeSessionRepo) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Code == session.Code {
			return fmt.Errorf("duplicate code %s", session.Code)
		}
	}
	r.nextID++
	session.ID = r.nextID
	r.rows[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) FindByCode(code string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Code == code {
			out := row
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSessionRepo) FindByID(id uint) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := row
	return &out, nil
}

func (r *fakeSessionRepo) FindActive() ([]models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Session
	for _, row := range r.rows {
		if row.Phase != models.PhaseFinished {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSessionRepo) Update(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[session.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type fakePlayerRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{rows: make(map[uint]models.Player)}
}

func (r *fakePlayerRepo) Create(player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	player.ID = r.nextID
	r.rows[player.ID] = *player
	return nil
}

func (r *fakePlayerRepo) FindByID(id uint) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := row
	return &out, nil
}

func (r *fakePlayerRepo) FindByToken(token string) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Token == token {
			out := row
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePlayerRepo) FindBySession(sessionID uint) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Player
	for _, row := range r.rows {
		if row.SessionID == sessionID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (r *fakePlayerRepo) FindByTeam(teamID uint) ([]models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Player
	for _, row := range r.rows {
		if row.TeamID != nil && *row.TeamID == teamID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (r *fakePlayerRepo) Update(player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[player.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[player.ID] = *player
	return nil
}

type fakeTeamRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{rows: make(map[uint]models.Team)}
}

func (r *fakeTeamRepo) Create(team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	team.ID = r.nextID
	r.rows[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) FindByID(id uint) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := row
	return &out, nil
}

func (r *fakeTeamRepo) FindBySession(sessionID uint) ([]models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Team
	for _, row := range r.rows {
		if row.SessionID == sessionID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeamRepo) Update(team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[team.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[team.ID] = *team
	return nil
}

type fakeGuessRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Guess
}

func newFakeGuessRepo() *fakeGuessRepo {
	return &fakeGuessRepo{}
}

func (r *fakeGuessRepo) Create(guess *models.Guess) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	guess.ID = r.nextID
	r.rows = append(r.rows, *guess)
	return nil
}

func (r *fakeGuessRepo) FindByTeam(teamID uint) ([]models.Guess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Guess
	for _, row := range r.rows {
		if row.TeamID == teamID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeVoteRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{}
}

func (r *fakeVoteRepo) Create(vote *models.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	vote.ID = r.nextID
	r.rows = append(r.rows, *vote)
	return nil
}

func (r *fakeVoteRepo) Exists(questionID, voterID uint, revote bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.QuestionID == questionID && row.VoterID == voterID && row.Revote == revote {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVoteRepo) FindByQuestion(questionID uint, revote bool) ([]models.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Vote
	for _, row := range r.rows {
		if row.QuestionID == questionID && row.Revote == revote {
			out = append(out, row)
		}
	}
	return out, nil
}

// fakeContent serves puzzles from memory.
type fakeContent struct {
	puzzles map[string]*puzzle.Puzzle
}

func newFakeContent(puzzles ...*puzzle.Puzzle) *fakeContent {
	store := &fakeContent{puzzles: make(map[string]*puzzle.Puzzle)}
	for _, p := range puzzles {
		store.puzzles[p.Name] = p
	}
	return store
}

func (s *fakeContent) Load(name string) (*puzzle.Puzzle, error) {
	p, ok := s.puzzles[name]
	if !ok {
		return nil, fmt.Errorf("puzzle %q not found", name)
	}
	return p, nil
}

// fakeConn satisfies Conn without a network.
type fakeConn struct {
	mu     sync.Mutex
	writes [][]byte
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {} // block forever; tests never run the read loop
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, data)
	return nil
}

func (c *fakeConn) SetReadLimit(int64)                {}
func (c *fakeConn) SetReadDeadline(time.Time) error   { return nil }
func (c *fakeConn) SetWriteDeadline(time.Time) error  { return nil }
func (c *fakeConn) SetPongHandler(func(string) error) {}
func (c *fakeConn) Close() error                      { return nil }

// testPuzzle is a five-word chain anchored at COVER (index 2).
func testPuzzle() *puzzle.Puzzle {
	return &puzzle.Puzzle{
		Name:  "downtown",
		Words: []string{"DOWN", "UNDER", "COVER", "UP", "TOWN"},
		Clues: map[string]puzzle.Clue{
			"DOWN":  {Forward: "Below ___"},
			"UNDER": {Forward: "___ story", Backward: "___ dog"},
			"COVER": {Forward: "___ beat", Backward: "Take ___"},
			"UP":    {Forward: "___ hall", Backward: "Blow ___"},
			"TOWN":  {Backward: "___ square"},
		},
	}
}

// env bundles the services under test over in-memory fakes.
type env struct {
	sessions  *fakeSessionRepo
	players   *fakePlayerRepo
	teams     *fakeTeamRepo
	guesses   *fakeGuessRepo
	votes     *fakeVoteRepo
	directory *ConnectionDirectory

	registry    *SessionRegistry
	game        *GameService
	progression *ProgressionEngine
	scoring     *ScoringEngine
	ledger      *VoteLedger
}

func newEnv() *env {
	e := &env{
		sessions:  newFakeSessionRepo(),
		players:   newFakePlayerRepo(),
		teams:     newFakeTeamRepo(),
		guesses:   newFakeGuessRepo(),
		votes:     newFakeVoteRepo(),
		directory: NewConnectionDirectory(),
	}
	content := newFakeContent(testPuzzle())
	e.scoring = NewScoringEngine(e.teams, e.guesses, content, e.directory)
	e.game = NewGameService(e.sessions, e.players, e.teams, e.directory, content, e.scoring)
	e.progression = NewProgressionEngine(e.sessions, e.teams, e.guesses, e.directory, content, e.game)
	e.registry = NewSessionRegistry(e.sessions, e.players, e.directory)
	e.ledger = NewVoteLedger(e.votes, e.directory)
	return e
}

// addPlayer joins a player and registers a live connection for them.
func (e *env) addPlayer(sessionCode, name string) *models.Player {
	player, err := e.registry.Join(sessionCode, name)
	if err != nil {
		panic(err)
	}
	e.directory.Register(player.ID, &fakeConn{})
	return player
}
