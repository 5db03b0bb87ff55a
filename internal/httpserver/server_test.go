// internal/httpserver/server_test.go
//
// Handler tests over the real router: game lifecycle, input validation,
// error-status mapping, and win/loss interpretation.

package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danzzilla/Unbeatable-Hangman/internal/store"
	"github.com/Danzzilla/Unbeatable-Hangman/internal/words"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "hangman-http-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "words.txt")
	dict := "aa\nbb\ncc\ncab\napple\nbravo\ncrane\n"
	if err := os.WriteFile(path, []byte(dict), 0o644); err != nil {
		panic(err)
	}
	os.Setenv("WORDS_FILE", path)
	if err := words.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestServer() *Server {
	return New(store.NewMemoryStore())
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	out := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestHealth(t *testing.T) {
	rec, out := doJSON(t, newTestServer(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["ok"])
}

func TestDebugWords(t *testing.T) {
	rec, out := doJSON(t, newTestServer(), http.MethodGet, "/debug/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 7, out["words"])
	lengths, ok := out["lengths"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, lengths["2"])
	assert.EqualValues(t, 3, lengths["5"])
}

func TestNewGame(t *testing.T) {
	rec, out := doJSON(t, newTestServer(), http.MethodPost, "/game/new",
		map[string]int{"length": 2, "maxWrong": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotEmpty(t, out["gameId"])
	assert.Equal(t, "- - ", out["pattern"])
	assert.EqualValues(t, 3, out["guessesLeft"])
	assert.EqualValues(t, 3, out["wordsLeft"])
}

func TestNewGameDefaults(t *testing.T) {
	// Empty body: length falls back to 5, maxWrong to 8.
	rec, out := doJSON(t, newTestServer(), http.MethodPost, "/game/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "- - - - - ", out["pattern"])
	assert.EqualValues(t, 8, out["guessesLeft"])
	assert.EqualValues(t, 3, out["wordsLeft"])
}

func TestNewGameInvalidArgs(t *testing.T) {
	srv := newTestServer()

	rec, out := doJSON(t, srv, http.MethodPost, "/game/new", map[string]int{"length": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, out["error"])

	rec, _ = doJSON(t, srv, http.MethodPost, "/game/new", map[string]int{"length": 2, "maxWrong": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewGameNoWordsOfLength(t *testing.T) {
	rec, out := doJSON(t, newTestServer(), http.MethodPost, "/game/new", map[string]int{"length": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no words of that length", out["error"])
}

func TestGuessValidation(t *testing.T) {
	srv := newTestServer()
	for _, bad := range []string{"", "ab", "1", "é"} {
		rec, _ := doJSON(t, srv, http.MethodPost, "/game/guess",
			map[string]string{"gameId": "x", "letter": bad})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "letter %q", bad)
	}
}

func TestGuessUnknownGame(t *testing.T) {
	rec, _ := doJSON(t, newTestServer(), http.MethodPost, "/game/guess",
		map[string]string{"gameId": "missing", "letter": "a"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuessFlow(t *testing.T) {
	srv := newTestServer()
	_, created := doJSON(t, srv, http.MethodPost, "/game/new",
		map[string]int{"length": 2, "maxWrong": 3})
	id := created["gameId"].(string)

	guess := func(letter string) (*httptest.ResponseRecorder, map[string]any) {
		return doJSON(t, srv, http.MethodPost, "/game/guess",
			map[string]string{"gameId": id, "letter": letter})
	}

	// 'a' splits {aa} from {bb,cc}; the adversary keeps the bigger family.
	rec, out := guess("A") // uppercase is accepted and lowercased
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, out["occurrences"])
	assert.Equal(t, "- - ", out["pattern"])
	assert.EqualValues(t, 2, out["guessesLeft"])
	assert.EqualValues(t, 2, out["wordsLeft"])
	assert.Equal(t, "a", out["guessed"])
	assert.Equal(t, "playing", out["state"])

	rec, _ = guess("a")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = guess("b")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, out["wordsLeft"])
	assert.Equal(t, "playing", out["state"])

	rec, out = guess("c")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, out["occurrences"])
	assert.Equal(t, "c c ", out["pattern"])
	assert.Equal(t, "won", out["state"])
	assert.Equal(t, "cc", out["answer"])
}

func TestGuessLossAndConflict(t *testing.T) {
	srv := newTestServer()
	_, created := doJSON(t, srv, http.MethodPost, "/game/new",
		map[string]int{"length": 3, "maxWrong": 2})
	id := created["gameId"].(string)

	// Only "cab" has length 3; miss twice to spend the budget.
	for i, letter := range []string{"x", "y"} {
		rec, out := doJSON(t, srv, http.MethodPost, "/game/guess",
			map[string]string{"gameId": id, "letter": letter})
		require.Equal(t, http.StatusOK, rec.Code, "guess %d", i)
		assert.EqualValues(t, 1-i, out["guessesLeft"])
		if i == 1 {
			assert.Equal(t, "lost", out["state"])
			assert.Equal(t, "cab", out["answer"])
		}
	}

	rec, _ := doJSON(t, srv, http.MethodPost, "/game/guess",
		map[string]string{"gameId": id, "letter": "z"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetGame(t *testing.T) {
	srv := newTestServer()
	_, created := doJSON(t, srv, http.MethodPost, "/game/new",
		map[string]int{"length": 2, "maxWrong": 4})
	id := created["gameId"].(string)

	rec, out := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/game/%s", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, out["gameId"])
	assert.Equal(t, "- - ", out["pattern"])
	assert.EqualValues(t, 4, out["guessesLeft"])
	assert.Equal(t, "", out["guessed"])
	assert.EqualValues(t, 3, out["wordsLeft"])
	assert.Equal(t, "playing", out["state"])
	assert.NotContains(t, out, "answer")
}

func TestGetGameMissing(t *testing.T) {
	rec, _ := doJSON(t, newTestServer(), http.MethodGet, "/game/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
