package scoring

import (
	"errors"
	"fmt"
	"math"
)

const (
	Version      = "0.2.1"
	BasicVersion = Version + "-basic"

	EngineHeuristic = "heuristic"
	EngineBasic     = "basic"

	maxKeywordBonus = 5.0
)

var ErrUnknownEngine = errors.New("unknown scoring engine")

type weightedSlot struct {
	slot   Slot
	weight float64
}

// Slots that feed the overall score. Weights sum to 1.
var weights = []weightedSlot{
	{SlotHeadline, 0.25},
	{SlotAbout, 0.25},
	{SlotExperience, 0.35},
	{SlotSkills, 0.15},
}

type Report struct {
	OverallScore    int             `json:"overall_score"`
	SubScores       map[string]int  `json:"sub_scores"`
	KeywordAnalysis KeywordAnalysis `json:"keyword_analysis"`
	Version         string          `json:"version"`
}

// Engine scores a profile. Implementations are pure and safe for concurrent use.
type Engine interface {
	Score(sections Sections) Report
	Name() string
	Version() string
}

type Option func(*options)

type options struct {
	foundCap int
}

// WithFoundCap sets how many matched keywords a report lists.
func WithFoundCap(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.foundCap = n
		}
	}
}

// NewEngine returns the engine registered under name. An empty name selects
// the heuristic engine.
func NewEngine(name string, bank KeywordBank, opts ...Option) (Engine, error) {
	o := options{foundCap: DefaultFoundCap}
	for _, opt := range opts {
		opt(&o)
	}

	switch name {
	case "", EngineHeuristic:
		return NewHeuristicEngine(bank, o.foundCap), nil
	case EngineBasic:
		return NewBasicEngine(bank, o.foundCap), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

type sectionFunc func(text string, minimumLength int) int

type weightedEngine struct {
	name     string
	version  string
	bank     KeywordBank
	foundCap int
	section  sectionFunc
}

func (e *weightedEngine) Name() string {
	return e.name
}

func (e *weightedEngine) Version() string {
	return e.version
}

func (e *weightedEngine) Score(sections Sections) Report {
	subs := make(map[string]int, len(weights))
	base := 0.0
	for _, w := range weights {
		s := e.section(sections.Get(w.slot), minimumLengths[w.slot])
		subs[string(w.slot)] = s
		base += float64(s) * w.weight
	}

	kw := AnalyzeKeywords(sections.Combined(), e.bank, e.foundCap)
	bonus := math.Min(maxKeywordBonus, float64(kw.Score)/10)

	return Report{
		OverallScore:    clampScore(base + bonus),
		SubScores:       subs,
		KeywordAnalysis: kw,
		Version:         e.version,
	}
}

// NewHeuristicEngine scores sections on length coverage and signal words.
func NewHeuristicEngine(bank KeywordBank, foundCap int) Engine {
	return &weightedEngine{
		name:     EngineHeuristic,
		version:  Version,
		bank:     bank,
		foundCap: foundCap,
		section:  SectionScore,
	}
}

// NewBasicEngine scores sections on length coverage only.
func NewBasicEngine(bank KeywordBank, foundCap int) Engine {
	return &weightedEngine{
		name:     EngineBasic,
		version:  BasicVersion,
		bank:     bank,
		foundCap: foundCap,
		section:  CoverageScore,
	}
}
