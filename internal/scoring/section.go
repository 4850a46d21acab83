package scoring

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	coverageWeight = 60.0
	signalWeight   = 40.0

	// A section earns full coverage at this multiple of its minimum length.
	saturationFactor = 4
	// Signal-word occurrences needed for full signal credit.
	signalsForFullCredit = 5.0
)

var signalWords = []string{
	"lead", "deliver", "improve", "increase", "optimize", "achieve",
	"reduced", "built", "launched", "managed", "results",
}

// Expected minimum length per scored slot.
var minimumLengths = map[Slot]int{
	SlotHeadline:   20,
	SlotAbout:      80,
	SlotExperience: 120,
	SlotSkills:     10,
}

// normalize collapses whitespace runs into single spaces and trims the ends.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func coverage(normalized string, minimumLength int) float64 {
	if minimumLength <= 0 {
		return 1.0
	}
	n := utf8.RuneCountInString(normalized)
	return math.Min(1.0, float64(n)/float64(minimumLength*saturationFactor))
}

func signalRatio(normalized string) float64 {
	low := strings.ToLower(normalized)
	count := 0
	for _, w := range signalWords {
		count += strings.Count(low, w)
	}
	return math.Min(1.0, float64(count)/signalsForFullCredit)
}

// SectionScore rates how substantive one section is, in [0,100].
// Blank text scores 0.
func SectionScore(text string, minimumLength int) int {
	t := normalize(text)
	if t == "" {
		return 0
	}
	raw := coverageWeight*coverage(t, minimumLength) + signalWeight*signalRatio(t)
	return clampScore(raw)
}

// CoverageScore rates a section on length alone, in [0,100].
func CoverageScore(text string, minimumLength int) int {
	t := normalize(text)
	if t == "" {
		return 0
	}
	return clampScore(100 * coverage(t, minimumLength))
}

// clampScore rounds half to even and bounds the result to [0,100].
func clampScore(v float64) int {
	r := math.RoundToEven(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}
