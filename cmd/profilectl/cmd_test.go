package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/profile-analyzer/internal/dto"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.Bytes()
}

func TestScoreCommand_FileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`headline: placeholder
about: Led a team to deliver and improve results, achieved increased revenue
experience: Managed a product team of 8. Launched 3 features that increased revenue by 20%. Built data pipelines in python and sql.
skills: Python, SQL, Excel, Leadership
`), 0o600))

	out := execute(t, "score", "--file", path, "--headline", "Senior Product Manager | Data & AI")

	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, 48, resp.OverallScore)
	assert.Equal(t, 26, resp.SubScores["headline"])
	assert.Equal(t, dto.SourceText, resp.Source)
}

func TestDocsCommand_TextExports(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("Experience\nManaged a team and delivered results"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("Skills\nSQL, Python"), 0o600))

	out := execute(t, "docs", "--concurrency", "2", first, second)

	var reports []documentReport
	require.NoError(t, json.Unmarshal(out, &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, first, reports[0].File)
	assert.Greater(t, reports[0].Report.SubScores["experience"], 0)
	assert.Equal(t, second, reports[1].File)
	assert.Greater(t, reports[1].Report.SubScores["skills"], 0)
	assert.Equal(t, dto.SourceTextFile, reports[1].Report.Source)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")

	assert.Contains(t, string(out), "profilectl version: unknown")
	assert.Contains(t, string(out), scoring.Version)
}

func TestReadProfileFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"headline":"Data Engineer","skills":"Go, SQL"}`), 0o600))
	req, err := readProfileFile(good)
	require.NoError(t, err)
	assert.Equal(t, dto.AnalyzeRequest{Headline: "Data Engineer", Skills: "Go, SQL"}, req)

	typo := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("headline: Data Engineer\nskils: Go\n"), 0o600))
	_, err = readProfileFile(typo)
	assert.ErrorContains(t, err, `unknown profile section "skils"`)
}
