package scoring

import (
	"sort"
	"strings"
)

// DefaultFoundCap bounds how many matched keywords a report lists.
const DefaultFoundCap = 10

type KeywordAnalysis struct {
	Score int      `json:"score"`
	Found []string `json:"found"`
	Total int      `json:"total"`
}

// AnalyzeKeywords measures how much of bank appears in text. The score uses the
// full match count even when Found is truncated to foundCap entries.
func AnalyzeKeywords(text string, bank KeywordBank, foundCap int) KeywordAnalysis {
	low := strings.ToLower(text)

	found := make([]string, 0)
	for _, k := range bank.words {
		if strings.Contains(low, k) {
			found = append(found, k)
		}
	}
	sort.Strings(found)

	score := 0
	if bank.Len() > 0 {
		score = clampScore(100 * float64(len(found)) / float64(bank.Len()))
	}

	if foundCap >= 0 && len(found) > foundCap {
		found = found[:foundCap]
	}

	return KeywordAnalysis{
		Score: score,
		Found: found,
		Total: bank.Len(),
	}
}
