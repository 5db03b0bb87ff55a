// internal/game/types.go
//
// Core type definitions for the hangman game manager.
// Defines:
//   - Game: adversarial state for a single session (candidate pool,
//     reveal pattern, guessed letters, mistake budget).
//   - Sentinel errors callers are expected to match with errors.Is.

package game

import "errors"

// Errors reported by New and the Game methods.
//
// ErrWordLength, ErrGuessBudget, and ErrAlreadyGuessed are usage errors:
// the caller passed something it should not have. ErrNoCandidates means no
// words remain to play against (typically a dictionary with no words of the
// requested length). ErrNoGuessesLeft is the terminal game-over signal;
// callers should stop guessing, not retry.
var (
	ErrWordLength     = errors.New("target word length must be at least 1")
	ErrGuessBudget    = errors.New("max wrong guesses must not be negative")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrNoCandidates   = errors.New("no candidate words remain")
	ErrNoGuessesLeft  = errors.New("no wrong guesses left")
)

// unrevealed marks a pattern position whose letter has not been matched yet.
// It doubles as the dash in the rendered pattern.
const unrevealed = '-'

// Game holds the adversarial state of a single hangman session.
//
// It never commits to a secret word: the pool holds every word still
// consistent with everything revealed so far, and each recorded guess keeps
// whichever reveal pattern leaves that pool largest. All four fields mutate
// together inside Record; queries hand out copies, never internal state.
//
// Not safe for concurrent use. Callers serialize access to an instance
// (the store wraps each Game in a locked session for exactly that reason).
type Game struct {
	left    int           // wrong guesses still allowed
	pool    []string      // candidate words, sorted, unique, all one length
	guessed map[byte]bool // letters recorded so far
	pattern []byte        // one byte per position: unrevealed or a letter
}
