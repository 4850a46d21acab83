// Package ioc builds the long-lived components shared by the server and the CLI.
package ioc

import (
	"fmt"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
)

// InitScoring loads the keyword bank once and selects the scoring engine.
func InitScoring(cfg *config.ScoringConfig) (scoring.KeywordBank, scoring.Engine, error) {
	bank := scoring.DefaultKeywordBank()
	if cfg.KeywordBankFile != "" {
		loaded, err := scoring.LoadKeywordBank(cfg.KeywordBankFile)
		if err != nil {
			return scoring.KeywordBank{}, nil, err
		}
		bank = loaded
	}

	engine, err := scoring.NewEngine(cfg.Engine, bank, scoring.WithFoundCap(cfg.FoundCap))
	if err != nil {
		return scoring.KeywordBank{}, nil, fmt.Errorf("scoring config: %w", err)
	}
	return bank, engine, nil
}
