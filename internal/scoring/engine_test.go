package scoring

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSections() Sections {
	return Sections{
		SlotHeadline:   "Senior Product Manager | Data & AI",
		SlotAbout:      "Led a team to deliver and improve results, achieved increased revenue",
		SlotExperience: "Managed a product team of 8. Launched 3 features that increased revenue by 20%. Built data pipelines in python and sql.",
		SlotSkills:     "Python, SQL, Excel, Leadership",
	}
}

func TestHeuristicEngine_Sample(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)

	report := engine.Score(sampleSections())

	assert.Equal(t, map[string]int{
		"headline":   26,
		"about":      53,
		"experience": 47,
		"skills":     53,
	}, report.SubScores)
	assert.Equal(t, 37, report.KeywordAnalysis.Score)
	assert.Equal(t, 27, report.KeywordAnalysis.Total)
	assert.Equal(t, []string{"ai", "data", "excel", "leadership", "product", "python", "results", "revenue", "sql", "team"}, report.KeywordAnalysis.Found)
	assert.Equal(t, 48, report.OverallScore)
	assert.Equal(t, Version, report.Version)
}

func TestHeuristicEngine_EmptySections(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)

	for _, sections := range []Sections{
		nil,
		{},
		{SlotHeadline: "", SlotAbout: "", SlotExperience: "", SlotSkills: ""},
	} {
		report := engine.Score(sections)

		assert.Equal(t, 0, report.OverallScore)
		assert.Equal(t, map[string]int{"headline": 0, "about": 0, "experience": 0, "skills": 0}, report.SubScores)
		assert.Equal(t, 0, report.KeywordAnalysis.Score)
		assert.Empty(t, report.KeywordAnalysis.Found)
	}
}

func TestHeuristicEngine_UnweightedSlotsOnlyFeedKeywords(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)

	report := engine.Score(Sections{
		SlotEducation:       "MBA, strategy and marketing",
		SlotCerts:           "Certified in data analysis",
		SlotRecommendations: "A great communication expert",
	})

	assert.NotContains(t, report.SubScores, "education")
	assert.Greater(t, report.KeywordAnalysis.Score, 0)
	assert.LessOrEqual(t, report.OverallScore, 5)
}

func TestHeuristicEngine_KeywordBonusCapped(t *testing.T) {
	bank := DefaultKeywordBank()
	engine := NewHeuristicEngine(bank, DefaultFoundCap)

	stuffed := strings.Join(bank.Keywords(), " ")
	withKeywords := engine.Score(Sections{SlotEducation: stuffed})
	assert.Equal(t, 100, withKeywords.KeywordAnalysis.Score)
	assert.Equal(t, 5, withKeywords.OverallScore)

	sections := sampleSections()
	plain := engine.Score(sections)
	sections[SlotCerts] = stuffed
	boosted := engine.Score(sections)
	assert.LessOrEqual(t, boosted.OverallScore-plain.OverallScore, 5)
	assert.Equal(t, plain.SubScores, boosted.SubScores)
}

func TestHeuristicEngine_Deterministic(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)

	first, err := json.Marshal(engine.Score(sampleSections()))
	require.NoError(t, err)
	second, err := json.Marshal(engine.Score(sampleSections()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestHeuristicEngine_ConcurrentUse(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)
	want := engine.Score(sampleSections())

	var wg sync.WaitGroup
	results := make([]Report, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.Score(sampleSections())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestHeuristicEngine_Bounds(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)
	huge := strings.Repeat("lead deliver improve results leadership python ", 2000)

	report := engine.Score(Sections{
		SlotHeadline: huge, SlotAbout: huge, SlotExperience: huge, SlotSkills: huge,
		SlotEducation: huge, SlotCerts: huge, SlotRecommendations: huge,
	})

	assert.Equal(t, 100, report.OverallScore)
	for slot, s := range report.SubScores {
		assert.Equal(t, 100, s, slot)
	}
}

func TestReport_JSONShape(t *testing.T) {
	engine := NewHeuristicEngine(DefaultKeywordBank(), DefaultFoundCap)

	data, err := json.Marshal(engine.Score(Sections{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"overall_score": 0,
		"sub_scores": {"headline": 0, "about": 0, "experience": 0, "skills": 0},
		"keyword_analysis": {"score": 0, "found": [], "total": 27},
		"version": "0.2.1"
	}`, string(data))
}

func TestBasicEngine(t *testing.T) {
	engine := NewBasicEngine(DefaultKeywordBank(), DefaultFoundCap)

	report := engine.Score(Sections{
		SlotHeadline: strings.Repeat("h", 80),
		SlotSkills:   strings.Repeat("s", 20),
	})

	assert.Equal(t, 100, report.SubScores["headline"])
	assert.Equal(t, 50, report.SubScores["skills"])
	assert.Equal(t, 0, report.SubScores["about"])
	// 100*0.25 + 50*0.15 = 32.5, rounded half to even.
	assert.Equal(t, 32, report.OverallScore)
	assert.Equal(t, BasicVersion, report.Version)
	assert.Equal(t, EngineBasic, engine.Name())
}

func TestNewEngine(t *testing.T) {
	bank := DefaultKeywordBank()

	e, err := NewEngine("", bank)
	require.NoError(t, err)
	assert.Equal(t, EngineHeuristic, e.Name())

	e, err = NewEngine(EngineBasic, bank, WithFoundCap(2))
	require.NoError(t, err)
	assert.Equal(t, EngineBasic, e.Name())
	report := e.Score(sampleSections())
	assert.Len(t, report.KeywordAnalysis.Found, 2)

	_, err = NewEngine("neural", bank)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestSectionsFromMap(t *testing.T) {
	s := SectionsFromMap(map[string]string{
		"headline": "Engineer",
		"skills":   "Go",
		"hobbies":  "chess",
	})

	assert.Equal(t, "Engineer", s.Get(SlotHeadline))
	assert.Equal(t, "Go", s.Get(SlotSkills))
	assert.Equal(t, "", s.Get(SlotAbout))
	assert.Len(t, s, 2)
	assert.Equal(t, "Engineer    Go  ", s.Combined())
}
