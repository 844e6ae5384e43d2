package domain

// Difficulty is the coarse three-tier classification of a card.
// The tier doubles as the ease-factor baseline during scheduling, so it is
// the only difficulty state that needs to be persisted per card.
type Difficulty string

// Possible difficulty tiers, ordered from easiest to hardest.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is one of the three known tiers.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Easier returns the adjacent easier tier. Tiers move one step at a time:
// HARD→MEDIUM→EASY. EASY stays EASY.
func (d Difficulty) Easier() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return d
	}
}

// Harder returns the adjacent harder tier. EASY→MEDIUM→HARD. HARD stays HARD.
func (d Difficulty) Harder() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return d
	}
}
