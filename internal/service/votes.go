package service

import (
	"sort"
	"time"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
)

// VoteTally summarizes the ballots cast for one question.
type VoteTally struct {
	QuestionID uint           `json:"question_id"`
	Revote     bool           `json:"revote"`
	Counts     map[string]int `json:"counts"`
	Winners    []string       `json:"winners"`
	Tie        bool           `json:"tie"`
}

// VoteLedger records ballots for the superlatives game mode. Uniqueness per
// (question, voter) is enforced under a per-question lock: one original vote
// and one tie-break revote each, no more.
type VoteLedger struct {
	voteRepo  repository.VoteRepository
	directory *ConnectionDirectory

	questionLocks *lockTable
}

func NewVoteLedger(voteRepo repository.VoteRepository, directory *ConnectionDirectory) *VoteLedger {
	return &VoteLedger{
		voteRepo:      voteRepo,
		directory:     directory,
		questionLocks: newLockTable(),
	}
}

// SubmitVote records one ballot. A second ballot of the same kind from the
// same voter fails with ErrDuplicateVote.
func (l *VoteLedger) SubmitVote(questionID, voterID uint, choice string, revote bool) (*models.Vote, error) {
	lock := l.questionLocks.get(questionID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := l.voteRepo.Exists(questionID, voterID, revote)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateVote
	}

	vote := &models.Vote{
		QuestionID: questionID,
		VoterID:    voterID,
		Choice:     choice,
		Revote:     revote,
		CastAt:     time.Now().UTC(),
	}
	if err := l.voteRepo.Create(vote); err != nil {
		return nil, err
	}

	l.directory.Broadcast(Event{Type: EventVoteRecorded, Data: map[string]any{
		"question_id": questionID,
		"voter_id":    voterID,
		"revote":      revote,
	}})
	return vote, nil
}

// Tally counts the ballots for a question and announces the result. A tie
// leaves multiple winners and signals that a revote round is needed.
func (l *VoteLedger) Tally(questionID uint, revote bool) (*VoteTally, error) {
	votes, err := l.voteRepo.FindByQuestion(questionID, revote)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range votes {
		counts[v.Choice]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	var winners []string
	for choice, n := range counts {
		if n == max && max > 0 {
			winners = append(winners, choice)
		}
	}
	sort.Strings(winners)

	tally := &VoteTally{
		QuestionID: questionID,
		Revote:     revote,
		Counts:     counts,
		Winners:    winners,
		Tie:        len(winners) > 1,
	}
	l.directory.Broadcast(Event{Type: EventVoteResults, Data: tally})
	return tally, nil
}
