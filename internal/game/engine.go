// internal/game/engine.go
//
// Adversarial ("evil") hangman manager for a single session.
// Responsibilities:
//   - Build the candidate pool from a dictionary and target word length.
//   - Record guesses: partition the pool into reveal-pattern families and
//     retreat to the largest one, charging the mistake budget only when the
//     surviving family reveals nothing.
//   - Expose read-only views of pool, pattern, guessed letters, and budget.
//
// Notes:
//   - The manager never picks an answer. Callers decide win/loss by looking
//     at the pattern and the remaining budget.
//   - Letters are single bytes; callers lowercase and validate input before
//     recording (a repeated letter is the only guess the manager rejects).
package game

import (
	"sort"
	"strings"
)

// New constructs a manager for words of the given length with a budget of
// maxWrong mistakes. The pool becomes the deduplicated, sorted subset of
// dictionary entries of exactly that length; the dictionary slice itself is
// never retained. A dictionary holding no words of the requested length is
// accepted here; Pattern and Record report ErrNoCandidates once called.
func New(dictionary []string, length, maxWrong int) (*Game, error) {
	if length < 1 {
		return nil, ErrWordLength
	}
	if maxWrong < 0 {
		return nil, ErrGuessBudget
	}

	pool := make([]string, 0, len(dictionary))
	for _, w := range dictionary {
		if len(w) == length {
			pool = append(pool, w)
		}
	}
	sort.Strings(pool)
	n := 0
	for _, w := range pool {
		if n == 0 || pool[n-1] != w {
			pool[n] = w
			n++
		}
	}
	pool = pool[:n]

	pattern := make([]byte, length)
	for i := range pattern {
		pattern[i] = unrevealed
	}

	return &Game{
		left:    maxWrong,
		pool:    pool,
		guessed: make(map[byte]bool),
		pattern: pattern,
	}, nil
}

// Words returns the candidate pool in sorted order. The slice is a copy.
func (g *Game) Words() []string {
	return append([]string(nil), g.pool...)
}

// GuessesLeft returns the number of wrong guesses still allowed.
func (g *Game) GuessesLeft() int { return g.left }

// Guessed returns the letters recorded so far, sorted ascending.
func (g *Game) Guessed() string {
	letters := make([]byte, 0, len(g.guessed))
	for c := range g.guessed {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

// Pattern returns the rendered reveal pattern: each position shows its
// revealed letter or a dash, followed by a space ("- - " for a fresh
// two-letter game, "c c " once solved). Fails with ErrNoCandidates when no
// words remain to be consistent with.
func (g *Game) Pattern() (string, error) {
	if len(g.pool) == 0 {
		return "", ErrNoCandidates
	}
	return render(g.pattern), nil
}

// Record applies a guess and returns how many positions it revealed.
//
// This is the adversarial step. The pool is partitioned into families by
// the reveal pattern each word would produce for this letter, and only the
// family with the strictly largest member count survives; ties go to the
// lexicographically smallest pattern so the choice is deterministic. The
// budget is charged only when the surviving pattern contains no occurrence
// of the letter, i.e. the guess turned out "wrong" for every word the
// manager still admits to.
//
// Preconditions, checked in order: the pool must be non-empty, the budget
// must be at least 1, and the letter must not have been guessed before.
// A failed precondition changes nothing; on success pool, pattern, guessed
// set, and budget all move in one step.
func (g *Game) Record(letter byte) (int, error) {
	if len(g.pool) == 0 {
		return 0, ErrNoCandidates
	}
	if g.left < 1 {
		return 0, ErrNoGuessesLeft
	}
	if g.guessed[letter] {
		return 0, ErrAlreadyGuessed
	}

	families := make(map[string][]string)
	for _, w := range g.pool {
		key := g.familyKey(w, letter)
		families[key] = append(families[key], w)
	}

	keys := make([]string, 0, len(families))
	for k := range families {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var bestKey string
	bestSize := 0
	for _, k := range keys {
		if n := len(families[k]); n > bestSize {
			bestKey, bestSize = k, n
		}
	}

	pattern := []byte(bestKey)
	occurrences := 0
	for _, c := range pattern {
		if c == letter {
			occurrences++
		}
	}

	g.pool = families[bestKey] // appended in pool order, so still sorted
	g.pattern = pattern
	g.guessed[letter] = true
	if occurrences == 0 {
		g.left--
	}
	return occurrences, nil
}

// familyKey computes the pattern word would show if letter were guessed:
// the current pattern with letter revealed at every matching position.
// Keys are one byte per position, so their sort order equals the sort order
// of the rendered patterns and the tie-break in Record stays faithful to
// the displayed strings.
func (g *Game) familyKey(word string, letter byte) string {
	key := append([]byte(nil), g.pattern...)
	for i := 0; i < len(word); i++ {
		if word[i] == letter {
			key[i] = letter
		}
	}
	return string(key)
}

// render produces the display form of a pattern: each position followed by
// a single space.
func render(pattern []byte) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)
	for _, c := range pattern {
		b.WriteByte(c)
		b.WriteByte(' ')
	}
	return b.String()
}
