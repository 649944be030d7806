package puzzle

import (
	"fmt"
	"strings"
)

// Clue holds the two directional clues attached to a word: Forward leads to
// the next word in the chain, Backward to the previous one.
type Clue struct {
	Forward  string `json:"forward"`
	Backward string `json:"backward"`
}

// Puzzle is an immutable word chain. Game logic never mutates it; a single
// loaded instance is shared by every team playing it.
type Puzzle struct {
	Name  string          `json:"name"`
	Words []string        `json:"words"`
	Clues map[string]Clue `json:"clues"`
}

// Length returns the number of words in the chain.
func (p *Puzzle) Length() int {
	return len(p.Words)
}

// StartPosition is the anchor index teams begin from. The chain is traversed
// bidirectionally, so play starts at the midpoint.
func (p *Puzzle) StartPosition() int {
	return len(p.Words) / 2
}

// WordAt returns the word at position, or "" if out of bounds.
func (p *Puzzle) WordAt(position int) string {
	if position < 0 || position >= len(p.Words) {
		return ""
	}
	return p.Words[position]
}

// ExpectedWord returns the word adjacent to position in the given direction.
// ok is false when the move would leave the chain.
func (p *Puzzle) ExpectedWord(position int, forward bool) (word string, ok bool) {
	target := position - 1
	if forward {
		target = position + 1
	}
	if target < 0 || target >= len(p.Words) {
		return "", false
	}
	return p.Words[target], true
}

// ClueFor returns the clue attached to the word at position in the given
// direction.
func (p *Puzzle) ClueFor(position int, forward bool) (string, bool) {
	word := p.WordAt(position)
	if word == "" {
		return "", false
	}
	clue, ok := p.Clues[word]
	if !ok {
		return "", false
	}
	if forward {
		return clue.Forward, clue.Forward != ""
	}
	return clue.Backward, clue.Backward != ""
}

// IsTerminal reports whether position is either end of the chain.
func (p *Puzzle) IsTerminal(position int) bool {
	return position == 0 || position == len(p.Words)-1
}

// Validate checks the invariants game logic relies on: a chain of at least
// three words with a clue entry for every word.
func (p *Puzzle) Validate() error {
	if len(p.Words) < 3 {
		return fmt.Errorf("puzzle %q: chain needs at least 3 words, got %d", p.Name, len(p.Words))
	}
	seen := make(map[string]struct{}, len(p.Words))
	for _, w := range p.Words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("puzzle %q: empty word in chain", p.Name)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("puzzle %q: duplicate word %q in chain", p.Name, w)
		}
		seen[w] = struct{}{}
		if _, ok := p.Clues[w]; !ok {
			return fmt.Errorf("puzzle %q: missing clues for word %q", p.Name, w)
		}
	}
	return nil
}
