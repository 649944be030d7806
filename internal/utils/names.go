package utils

import (
	"fmt"
	"math/rand"
)

var teamAdjectives = []string{
	"Brilliant", "Mighty", "Sneaky", "Clever", "Daring", "Fearless",
	"Jolly", "Wacky", "Cosmic", "Electric", "Blazing", "Epic",
	"Legendary", "Mystical", "Rowdy", "Funky", "Stellar", "Supreme",
	"Chaotic", "Turbo", "Quantum", "Speedy", "Brave", "Dynamic",
}

var teamNouns = []string{
	"Bananas", "Sloths", "Pandas", "Llamas", "Narwhals", "Penguins",
	"Otters", "Raccoons", "Flamingos", "Unicorns", "Dragons", "Wizards",
	"Pirates", "Ninjas", "Vikings", "Robots", "Dinosaurs", "Krakens",
	"Wombats", "Meerkats", "Hedgehogs", "Jellyfish", "Squirrels", "Beavers",
}

// TeamName generates a random two-word team name.
func TeamName() string {
	adjective := teamAdjectives[rand.Intn(len(teamAdjectives))]
	noun := teamNouns[rand.Intn(len(teamNouns))]
	return adjective + " " + noun
}

// TeamNames generates count distinct team names. Should count exceed the
// combination space, the remainder falls back to numbered names.
func TeamNames(count int) []string {
	limit := len(teamAdjectives) * len(teamNouns)
	names := make([]string, 0, count)
	used := make(map[string]struct{}, count)
	for len(names) < count {
		if len(used) >= limit {
			names = append(names, fmt.Sprintf("Team %d", len(names)+1))
			continue
		}
		name := TeamName()
		if _, dup := used[name]; dup {
			continue
		}
		used[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
