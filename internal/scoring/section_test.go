package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionScore_BlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t \r\n"} {
		assert.Equal(t, 0, SectionScore(text, 80), "text %q", text)
	}
}

func TestSectionScore_SignalWordsAndCoverage(t *testing.T) {
	about := "Led a team to deliver and improve results, achieved increased revenue"

	// 69 runes against 320 for saturation, five signal words.
	assert.Equal(t, 53, SectionScore(about, 80))
}

func TestSectionScore_CollapsesWhitespace(t *testing.T) {
	compact := "built a platform"
	spaced := "  built \n\n a\t\tplatform   "

	assert.Equal(t, SectionScore(compact, 20), SectionScore(spaced, 20))
}

func TestSectionScore_RepeatedSignalWordsCount(t *testing.T) {
	text := "results results results results results"

	// 39 runes / 160 * 60 = 14.625, plus full signal credit.
	assert.Equal(t, 55, SectionScore(text, 40))
}

func TestSectionScore_CaseInsensitiveSignals(t *testing.T) {
	assert.Equal(t, SectionScore("MANAGED and BUILT", 10), SectionScore("managed and built", 10))
}

func TestSectionScore_Saturation(t *testing.T) {
	minLen := 20
	atSaturation := strings.Repeat("x", minLen*4)
	beyond := strings.Repeat("x", minLen*40)

	assert.Equal(t, 60, SectionScore(atSaturation, minLen))
	assert.Equal(t, 60, SectionScore(beyond, minLen))
}

func TestSectionScore_FullMarks(t *testing.T) {
	text := strings.Repeat("x", 100) + " lead deliver improve increase optimize"
	assert.Equal(t, 100, SectionScore(text, 10))
}

func TestSectionScore_MonotonicInSignalWords(t *testing.T) {
	base := "Engineer working on payments infrastructure for a retail company"
	prev := SectionScore(base, 80)
	text := base
	for _, w := range append(signalWords, signalWords...) {
		text += " " + w
		got := SectionScore(text, 80)
		assert.GreaterOrEqual(t, got, prev, "after appending %q", w)
		prev = got
	}
}

func TestSectionScore_Bounds(t *testing.T) {
	inputs := []string{
		"x",
		strings.Repeat("lead ", 500),
		strings.Repeat("ü", 10000),
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		for _, minLen := range []int{0, 1, 10, 120} {
			got := SectionScore(in, minLen)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}

func TestSectionScore_CountsRunesNotBytes(t *testing.T) {
	// 40 two-byte runes: half of the 80 needed for saturation at minimum 20.
	assert.Equal(t, 30, SectionScore(strings.Repeat("é", 40), 20))
}

func TestCoverageScore(t *testing.T) {
	assert.Equal(t, 0, CoverageScore("  ", 10))
	assert.Equal(t, 50, CoverageScore(strings.Repeat("a", 20), 10))
	assert.Equal(t, 100, CoverageScore(strings.Repeat("a", 400), 10))
	assert.Equal(t, CoverageScore("lead lead", 10), CoverageScore("abcd abcd", 10))
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{25.5, 26},
		{26.5, 26},
		{99.4, 99},
		{100.4, 100},
		{250, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampScore(tt.in), "clampScore(%v)", tt.in)
	}
}
