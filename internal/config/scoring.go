package config

import "sync"

type ScoringConfig struct {
	Engine          string
	KeywordBankFile string
	FoundCap        int
}

var (
	scoringConfig *ScoringConfig
	scoringOnce   sync.Once
)

func LoadScoringConfig() *ScoringConfig {
	scoringOnce.Do(func() {
		scoringConfig = newScoringConfig()
	})
	return scoringConfig
}

func newScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Engine:          envString("SCORING_ENGINE", "heuristic"),
		KeywordBankFile: envString("KEYWORD_BANK_FILE", ""),
		FoundCap:        envInt("KEYWORD_FOUND_CAP", 10),
	}
}
