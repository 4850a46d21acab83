package scoring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyKeywordBank = errors.New("keyword bank is empty")

var defaultKeywords = []string{
	"leadership", "team", "strategy", "growth", "product", "sales", "marketing",
	"innovation", "ai", "data", "analysis", "management", "customer", "results",
	"experience", "expert", "stakeholder", "project", "revenue", "kpi", "okr",
	"python", "sql", "excel", "communication", "collaboration", "problem solving",
}

// KeywordBank is an immutable, ordered set of lowercase keywords.
// The zero value is an empty bank.
type KeywordBank struct {
	words []string
}

// NewKeywordBank trims and lower-cases words, drops blanks and duplicates and
// keeps first-seen order.
func NewKeywordBank(words ...string) (KeywordBank, error) {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return KeywordBank{}, ErrEmptyKeywordBank
	}
	return KeywordBank{words: out}, nil
}

// DefaultKeywordBank returns the built-in bank.
func DefaultKeywordBank() KeywordBank {
	bank, err := NewKeywordBank(defaultKeywords...)
	if err != nil {
		panic(err)
	}
	return bank
}

type keywordFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadKeywordBank reads a YAML document of the form `keywords: [...]`.
func LoadKeywordBank(path string) (KeywordBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeywordBank{}, fmt.Errorf("failed to read keyword bank %s: %w", path, err)
	}

	var f keywordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return KeywordBank{}, fmt.Errorf("failed to parse keyword bank %s: %w", path, err)
	}

	bank, err := NewKeywordBank(f.Keywords...)
	if err != nil {
		return KeywordBank{}, fmt.Errorf("keyword bank %s: %w", path, err)
	}
	return bank, nil
}

func (b KeywordBank) Len() int {
	return len(b.words)
}

// Keywords returns a copy of the bank in the order it was built.
func (b KeywordBank) Keywords() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}
