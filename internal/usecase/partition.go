package usecase

import (
	"strings"

	"github.com/fadilmartias/profile-analyzer/internal/scoring"
)

// Legacy slicing offsets, in runes, used when a document has no recognizable
// section headings.
const (
	legacyAboutRunes      = 1500
	legacyExperienceRunes = 4000
	legacySkillsRunes     = 1500
)

// discardSlot marks headings whose content is not scored.
const discardSlot scoring.Slot = ""

var headingSlots = map[string]scoring.Slot{
	"headline":                    scoring.SlotHeadline,
	"summary":                     scoring.SlotAbout,
	"about":                       scoring.SlotAbout,
	"about me":                    scoring.SlotAbout,
	"profile":                     scoring.SlotAbout,
	"experience":                  scoring.SlotExperience,
	"work experience":             scoring.SlotExperience,
	"professional experience":     scoring.SlotExperience,
	"employment history":          scoring.SlotExperience,
	"education":                   scoring.SlotEducation,
	"skills":                      scoring.SlotSkills,
	"top skills":                  scoring.SlotSkills,
	"technical skills":            scoring.SlotSkills,
	"certifications":              scoring.SlotCerts,
	"licenses & certifications":   scoring.SlotCerts,
	"licenses and certifications": scoring.SlotCerts,
	"recommendations":             scoring.SlotRecommendations,
	"contact":                     discardSlot,
	"contact info":                discardSlot,
	"languages":                   discardSlot,
	"honors-awards":               discardSlot,
	"honors & awards":             discardSlot,
	"honors and awards":           discardSlot,
	"publications":                discardSlot,
	"patents":                     discardSlot,
	"interests":                   discardSlot,
}

// Partition splits extracted document text into profile sections.
//
// Lines that read like a known section heading ("Summary", "Top Skills",
// "Experience", ...) start a new section and text before the first heading is
// dropped, as is text under unscored headings such as "Languages" or
// "Contact". Documents without any heading fall back to fixed slicing: the first
// 1500 runes go to about, the first 4000 to experience and the last 1500 to
// skills.
func Partition(text string) scoring.Sections {
	if sections, ok := partitionByHeadings(text); ok {
		return sections
	}
	return legacySlices(text)
}

func partitionByHeadings(text string) (scoring.Sections, bool) {
	buffers := make(map[scoring.Slot]*strings.Builder)
	var current *strings.Builder
	found := false

	for _, line := range strings.Split(text, "\n") {
		if slot, ok := headingSlot(line); ok {
			if slot == discardSlot {
				current = nil
				continue
			}
			found = true
			b, exists := buffers[slot]
			if !exists {
				b = &strings.Builder{}
				buffers[slot] = b
			}
			current = b
			continue
		}
		if current == nil {
			continue
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(strings.TrimRight(line, "\r"))
	}
	if !found {
		return nil, false
	}

	sections := make(scoring.Sections, len(buffers))
	nonEmpty := false
	for slot, b := range buffers {
		s := strings.TrimSpace(b.String())
		sections[slot] = s
		if s != "" {
			nonEmpty = true
		}
	}
	return sections, nonEmpty
}

func headingSlot(line string) (scoring.Slot, bool) {
	h := strings.ToLower(strings.TrimSpace(line))
	h = strings.TrimSpace(strings.TrimSuffix(h, ":"))
	h = strings.Join(strings.Fields(h), " ")
	slot, ok := headingSlots[h]
	return slot, ok
}

func legacySlices(text string) scoring.Sections {
	runes := []rune(text)
	return scoring.Sections{
		scoring.SlotHeadline:   "",
		scoring.SlotAbout:      string(runes[:min(len(runes), legacyAboutRunes)]),
		scoring.SlotExperience: string(runes[:min(len(runes), legacyExperienceRunes)]),
		scoring.SlotSkills:     string(runes[max(0, len(runes)-legacySkillsRunes):]),
	}
}
