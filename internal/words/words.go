// internal/words/words.go
//
// Provides the dictionary for the hangman engine.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to
//     the embedded default dictionary.
//   - Normalize entries: lowercase, trimmed, pure a-z, duplicates collapsed.
//   - Supply diagnostics (word count, per-length histogram) for the debug
//     endpoint and front-end length menus.
//
// Unlike a wordle-style game there is no allowed/answers split: the engine
// takes any word list and filters by length itself, so one flat list of
// words of every length is enough.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Initialization is run once (sync.Once). Callers that bypass the
// environment (the console client's -words flag) use Load directly.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Danzzilla/Unbeatable-Hangman/assets"
)

var (
	initOnce   sync.Once
	dictionary []string // normalized, sorted, unique
	byLength   map[int]int
	initialErr error
)

// Init loads the word list exactly once: from WORDS_FILE when set, else
// from the embedded default dictionary. Returns an error if the resulting
// list is empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = Load(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			raw, err := assets.DictionaryList()
			if err != nil {
				initialErr = fmt.Errorf("words: embedded dictionary: %w", err)
				return
			}
			list = normalize(raw)
		}

		if len(list) == 0 {
			initialErr = errors.New("words: dictionary is empty")
			return
		}
		dictionary = list
		byLength = histogram(list)
	})
	return initialErr
}

// Load reads one word per line from a file: lowercases, trims, skips blank
// lines and # comments, keeps only pure a-z words, and collapses duplicates.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return normalize(raw), nil
}

// normalize filters raw lines down to the sorted, unique word list.
func normalize(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// All returns a copy of the loaded word list.
func All() []string {
	return append([]string(nil), dictionary...)
}

// Stats returns the number of loaded words.
func Stats() int {
	return len(dictionary)
}

// Lengths returns a copy of the words-per-length histogram.
func Lengths() map[int]int {
	out := make(map[int]int, len(byLength))
	for l, n := range byLength {
		out[l] = n
	}
	return out
}

// histogram counts words per length.
func histogram(list []string) map[int]int {
	m := make(map[int]int)
	for _, w := range list {
		m[len(w)]++
	}
	return m
}
