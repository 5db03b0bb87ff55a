// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Win/loss interpretation: the engine never decides the outcome, so the
//     handlers read it off the pattern and remaining budget, and reveal the
//     committed word once the game is over.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Handlers hold the session lock across every engine call for a request;
//     the engine itself is lock-free.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Danzzilla/Unbeatable-Hangman/internal/game"
	"github.com/Danzzilla/Unbeatable-Hangman/internal/store"
	"github.com/Danzzilla/Unbeatable-Hangman/internal/words"
)

// Server bundles the router and the in-memory session store.
type Server struct {
	r     *chi.Mux
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","/debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"words":   words.Stats(),
			"lengths": words.Lengths(),
		})
	})

	// --- game endpoints ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new. Absent fields take the
// env-configured defaults.
type newGameReq struct {
	Length   *int `json:"length"`
	MaxWrong *int `json:"maxWrong"`
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guessesLeft"`
	WordsLeft   int    `json:"wordsLeft"`
}

// handleNewGame builds a manager over the loaded dictionary and stores it
// as a new session. A length with no dictionary words constructs fine but
// fails the initial pattern read; that surfaces here as a 400 and the
// session is never stored.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	length := getEnvInt("DEFAULT_WORD_LENGTH", 5)
	if req.Length != nil {
		length = *req.Length
	}
	maxWrong := getEnvInt("DEFAULT_MAX_WRONG", 8)
	if req.MaxWrong != nil {
		maxWrong = *req.MaxWrong
	}

	g, err := game.New(words.All(), length, maxWrong)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	pattern, err := g.Pattern()
	if err != nil {
		http.Error(w, `{"error":"no words of that length"}`, http.StatusBadRequest)
		return
	}

	sess := store.NewSession(g)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", sess.ID).Int("length", length).Int("maxWrong", maxWrong).
		Int("wordsLeft", len(g.Words())).Msg("new game")

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:      sess.ID,
		Pattern:     pattern,
		GuessesLeft: g.GuessesLeft(),
		WordsLeft:   len(g.Words()),
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}
type guessRes struct {
	Occurrences int    `json:"occurrences"`
	Pattern     string `json:"pattern"`
	GuessesLeft int    `json:"guessesLeft"`
	Guessed     string `json:"guessed"`
	WordsLeft   int    `json:"wordsLeft"`
	State       string `json:"state"`            // "playing" | "won" | "lost"
	Answer      string `json:"answer,omitempty"` // set once state != "playing"
}

// handleGuess validates the letter, records it against the session's game,
// and reports the resulting public state. The engine assumes a valid single
// lowercase letter, so the format check lives here.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	letter := strings.ToLower(strings.TrimSpace(req.Letter))
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		http.Error(w, `{"error":"guess must be a single letter a-z"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	occ, err := sess.Game.Record(letter[0])
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, statusFromErr(err))
		return
	}

	res := guessRes{Occurrences: occ}
	fillPublicState(&res, sess.Game)
	_ = json.NewEncoder(w).Encode(res)
}

// handleGetGame reports the current public state of a session.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	type stateRes struct {
		GameID      string `json:"gameId"`
		Pattern     string `json:"pattern"`
		GuessesLeft int    `json:"guessesLeft"`
		Guessed     string `json:"guessed"`
		WordsLeft   int    `json:"wordsLeft"`
		State       string `json:"state"`
		Answer      string `json:"answer,omitempty"`
	}
	var gr guessRes
	fillPublicState(&gr, sess.Game)
	_ = json.NewEncoder(w).Encode(stateRes{
		GameID:      sess.ID,
		Pattern:     gr.Pattern,
		GuessesLeft: gr.GuessesLeft,
		Guessed:     gr.Guessed,
		WordsLeft:   gr.WordsLeft,
		State:       gr.State,
		Answer:      gr.Answer,
	})
}

// statusFromErr maps engine errors to HTTP statuses: usage errors are 400,
// terminal game states are 409.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, game.ErrAlreadyGuessed):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrNoGuessesLeft), errors.Is(err, game.ErrNoCandidates):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fillPublicState populates pattern, counters, and the win/loss reading of
// a game. The engine has no terminal state of its own: "won" means the
// pattern is fully revealed, "lost" means the budget is spent first. Once
// the game is over the adversary finally commits, so the answer is the
// first word still in the pool.
func fillPublicState(res *guessRes, g *game.Game) {
	pattern, err := g.Pattern()
	if err != nil {
		// Unreachable for stored sessions: /game/new refuses empty pools.
		pattern = ""
	}
	res.Pattern = pattern
	res.GuessesLeft = g.GuessesLeft()
	res.Guessed = g.Guessed()
	pool := g.Words()
	res.WordsLeft = len(pool)

	switch {
	case !strings.Contains(pattern, "-"):
		res.State = "won"
	case g.GuessesLeft() == 0:
		res.State = "lost"
	default:
		res.State = "playing"
	}
	if res.State != "playing" && len(pool) > 0 {
		res.Answer = pool[0]
	}
}

// ------------------------------- small util --------------------------------

// getEnvInt parses k as an int, falling back to def.
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
