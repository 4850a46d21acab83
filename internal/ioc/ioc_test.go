package ioc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitScoring_Defaults(t *testing.T) {
	bank, engine, err := InitScoring(&config.ScoringConfig{Engine: "heuristic", FoundCap: 10})

	require.NoError(t, err)
	assert.Equal(t, 27, bank.Len())
	assert.Equal(t, scoring.EngineHeuristic, engine.Name())
}

func TestInitScoring_KeywordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: [go, rust]\n"), 0o600))

	bank, engine, err := InitScoring(&config.ScoringConfig{Engine: "basic", KeywordBankFile: path, FoundCap: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, bank.Keywords())
	assert.Equal(t, scoring.EngineBasic, engine.Name())
	report := engine.Score(scoring.Sections{scoring.SlotSkills: "Go and Rust"})
	assert.Equal(t, []string{"go"}, report.KeywordAnalysis.Found)
	assert.Equal(t, 100, report.KeywordAnalysis.Score)
}

func TestInitScoring_Errors(t *testing.T) {
	_, _, err := InitScoring(&config.ScoringConfig{Engine: "mystery"})
	assert.ErrorIs(t, err, scoring.ErrUnknownEngine)

	_, _, err = InitScoring(&config.ScoringConfig{KeywordBankFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestInitDocumentExtractor(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	e := InitDocumentExtractor(context.Background(),
		&config.ExtractionConfig{OCREnabled: true, TesseractLang: "eng"},
		&config.GeminiConfig{},
		zap.New(core))

	assert.Equal(t, "document", e.Name())
	entries := observed.FilterMessage("document extraction chain").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []interface{}{"fitz", "ocr"}, entries[0].ContextMap()["extractors"])
}
