// cmd/hangman/main.go
//
// Interactive console client for the hangman engine.
// Responsibilities:
//   - Load a dictionary (embedded default, WORDS_FILE, or -words flag).
//   - Run a readline guess loop against a single game.
//   - Interpret the outcome: win when the pattern fills in, loss when the
//     budget runs out, revealing the word the adversary finally commits to.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"

	"github.com/Danzzilla/Unbeatable-Hangman/internal/game"
	"github.com/Danzzilla/Unbeatable-Hangman/internal/words"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: hangman [flags]

Play a game of hangman against an opponent that never commits to a word
until it has to.

Flags:
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	length := flag.Int("length", 5, "target word length")
	guesses := flag.Int("guesses", 8, "allowed wrong guesses")
	wordsFile := flag.String("words", "", "word list file (default: embedded dictionary)")
	showCount := flag.Bool("show-count", false, "print the live candidate-pool size each turn")
	flag.Usage = usage
	flag.Parse()

	var (
		dict []string
		err  error
	)
	if *wordsFile != "" {
		dict, err = words.Load(*wordsFile)
	} else {
		if err = words.Init(); err == nil {
			dict = words.All()
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "hangman:", err)
		os.Exit(1)
	}

	g, err := game.New(dict, *length, *guesses)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hangman:", err)
		os.Exit(1)
	}
	if _, err := g.Pattern(); err != nil {
		fmt.Fprintf(os.Stderr, "hangman: no %d-letter words in the dictionary\n", *length)
		os.Exit(1)
	}

	fmt.Printf("hangman: %s words loaded; guess the %d-letter word (%d wrong guesses allowed)\n",
		humanize.Comma(int64(len(dict))), *length, *guesses)

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "guess> ",
		HistoryFile: filepath.Join(os.TempDir(), "hangman_history.txt"),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "hangman:", err)
		os.Exit(1)
	}
	defer l.Close()

	for {
		printTurn(g, *showCount)

		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			fmt.Fprintln(os.Stderr, "hangman:", err)
			return
		}

		in := strings.ToLower(strings.TrimSpace(line))
		if len(in) != 1 || in[0] < 'a' || in[0] > 'z' {
			fmt.Println("enter a single letter a-z")
			continue
		}

		occ, err := g.Record(in[0])
		if err != nil {
			fmt.Println(err)
			continue
		}
		switch occ {
		case 0:
			fmt.Printf("no %q anywhere\n", in)
		case 1:
			fmt.Printf("yes, one %q\n", in)
		default:
			fmt.Printf("yes, %d of %q\n", occ, in)
		}

		p, err := g.Pattern()
		if err != nil {
			fmt.Fprintln(os.Stderr, "hangman:", err)
			return
		}
		if !strings.Contains(p, "-") {
			fmt.Printf("you win: %s\n", g.Words()[0])
			return
		}
		if g.GuessesLeft() == 0 {
			fmt.Printf("out of guesses; the word was %q\n", g.Words()[0])
			return
		}
	}
}

// printTurn shows the pattern, remaining budget, and guess history.
func printTurn(g *game.Game, showCount bool) {
	p, _ := g.Pattern()
	fmt.Printf("\n  %s\n", p)
	fmt.Printf("  wrong guesses left: %d", g.GuessesLeft())
	if guessed := g.Guessed(); guessed != "" {
		fmt.Printf("   guessed: %s", guessed)
	}
	if showCount {
		fmt.Printf("   words in play: %d", len(g.Words()))
	}
	fmt.Println()
}
