// internal/words/words_test.go
//
// Tests for word-list loading and normalization.

package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadNormalizes(t *testing.T) {
	path := writeWordFile(t, `# comment line
Apple
  banana
cherry

apple
don't
x9y
zz
`)
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry", "zz"}, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestNormalizeKeepsAnyLength(t *testing.T) {
	got := normalize([]string{"a", "ab", "abc", "abcdefghij"})
	assert.Equal(t, []string{"a", "ab", "abc", "abcdefghij"}, got)
}

func TestHistogram(t *testing.T) {
	m := histogram([]string{"aa", "bb", "ccc", "d"})
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, m)
}

func TestInitFromEnvFile(t *testing.T) {
	path := writeWordFile(t, "alpha\nbeta\ngamma\n")
	t.Setenv("WORDS_FILE", path)

	require.NoError(t, Init())

	all := All()
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, all)
	assert.Equal(t, 3, Stats())
	assert.Equal(t, map[int]int{4: 1, 5: 2}, Lengths())

	// Init is once-only: a second call with a different env is a no-op.
	t.Setenv("WORDS_FILE", writeWordFile(t, "other\n"))
	require.NoError(t, Init())
	assert.Equal(t, all, All())
}

func TestAllReturnsCopy(t *testing.T) {
	path := writeWordFile(t, "alpha\nbeta\n")
	t.Setenv("WORDS_FILE", path)
	require.NoError(t, Init())

	if got := All(); len(got) > 0 {
		got[0] = "mutated"
	}
	assert.NotContains(t, All(), "mutated")
}
