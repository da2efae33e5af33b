// internal/game/types.go
//
// Type definitions for a hidden-answer game.
// A Game plays the role of the Wordle website: it knows the answer and scores
// guesses, which lets a solver session run without a human.

package game

// Game holds the state of a single game against a known answer.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always uppercase).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Guesses  []string // Guesses made so far (uppercase).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}
