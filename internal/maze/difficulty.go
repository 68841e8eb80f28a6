package maze

import "fmt"

// Difficulty selects the generator's carving profile.
type Difficulty uint8

const (
	DifficultyEasy   Difficulty = iota // long corridors, few branches
	DifficultyNormal                   // balanced
	DifficultyHard                     // heavy branching, diameter endpoints
	difficultyCount                    // sentinel
)

// ParseDifficulty maps the string forms "easy", "normal" and "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("maze: unknown difficulty %q", s)
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next cycles to the following difficulty, wrapping at the end.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % difficultyCount
}

// carveProfile tunes how the generator grows the spanning tree.
// Branching is the chance to expand from a random active cell instead
// of the newest one, which forks corridors; straightness is the chance
// to keep a corridor going in its entry direction when possible.
type carveProfile struct {
	Branching    float64
	Straightness float64
	LongestPath  bool // refine start/end to a graph-diameter pair
}

var carveProfiles = [difficultyCount]carveProfile{
	DifficultyEasy:   {Branching: 0.10, Straightness: 0.65},
	DifficultyNormal: {Branching: 0.40, Straightness: 0.30},
	DifficultyHard:   {Branching: 0.85, Straightness: 0.05, LongestPath: true},
}

// profile returns the carve profile for d, falling back to normal for
// out-of-range values.
func (d Difficulty) profile() carveProfile {
	if d < difficultyCount {
		return carveProfiles[d]
	}
	return carveProfiles[DifficultyNormal]
}

// PresetSize returns the grid dimensions a UI pairs with d when the
// user gives no explicit ones. Explicit dimensions always win.
func (d Difficulty) PresetSize() (width, height int) {
	switch d {
	case DifficultyEasy:
		return 16, 12
	case DifficultyNormal:
		return 32, 24
	case DifficultyHard:
		return 64, 48
	default:
		return 32, 24
	}
}
