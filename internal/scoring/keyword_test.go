package scoring

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bankOf(t *testing.T, n int) KeywordBank {
	t.Helper()
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("kw%02d", i)
	}
	bank, err := NewKeywordBank(words...)
	require.NoError(t, err)
	return bank
}

func TestAnalyzeKeywords_HalfOfTwentyEight(t *testing.T) {
	bank := bankOf(t, 28)

	var text []string
	for i := 0; i < 14; i++ {
		text = append(text, fmt.Sprintf("KW%02d", i))
	}

	got := AnalyzeKeywords(strings.Join(text, " "), bank, DefaultFoundCap)

	assert.Equal(t, 50, got.Score)
	assert.Equal(t, 28, got.Total)
	assert.Len(t, got.Found, DefaultFoundCap)
}

func TestAnalyzeKeywords_FoundIsSortedAndCapped(t *testing.T) {
	bank, err := NewKeywordBank("sql", "python", "data", "ai")
	require.NoError(t, err)

	got := AnalyzeKeywords("Python and SQL for data work, with AI", bank, 3)

	assert.Equal(t, []string{"ai", "data", "python"}, got.Found)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, 4, got.Total)
}

func TestAnalyzeKeywords_SubstringMatch(t *testing.T) {
	bank, err := NewKeywordBank("team", "problem solving")
	require.NoError(t, err)

	got := AnalyzeKeywords("teamwork and Problem Solving", bank, DefaultFoundCap)

	assert.Equal(t, []string{"problem solving", "team"}, got.Found)
}

func TestAnalyzeKeywords_EmptyText(t *testing.T) {
	got := AnalyzeKeywords("", DefaultKeywordBank(), DefaultFoundCap)

	assert.Equal(t, 0, got.Score)
	assert.Empty(t, got.Found)
	assert.NotNil(t, got.Found)
	assert.Equal(t, 27, got.Total)
}

func TestAnalyzeKeywords_EmptyBank(t *testing.T) {
	got := AnalyzeKeywords("leadership", KeywordBank{}, DefaultFoundCap)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 0, got.Total)
	assert.Empty(t, got.Found)
}

func TestNewKeywordBank(t *testing.T) {
	bank, err := NewKeywordBank(" SQL ", "sql", "", "Python", "  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"sql", "python"}, bank.Keywords())

	_, err = NewKeywordBank("", " ")
	assert.ErrorIs(t, err, ErrEmptyKeywordBank)
}

func TestKeywordBank_KeywordsReturnsCopy(t *testing.T) {
	bank := DefaultKeywordBank()
	words := bank.Keywords()
	words[0] = "mutated"

	assert.Equal(t, "leadership", bank.Keywords()[0])
}

func TestLoadKeywordBank(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords:\n  - Go\n  - kubernetes\n  - go\n"), 0o600))

	bank, err := LoadKeywordBank(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes"}, bank.Keywords())

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("keywords: []\n"), 0o600))
	_, err = LoadKeywordBank(empty)
	assert.ErrorIs(t, err, ErrEmptyKeywordBank)

	_, err = LoadKeywordBank(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("keywords: [unterminated\n"), 0o600))
	_, err = LoadKeywordBank(broken)
	assert.Error(t, err)
}
