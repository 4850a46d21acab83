// Package scoring turns named profile sections into a bounded, deterministic score report.
package scoring

import "strings"

type Slot string

const (
	SlotHeadline        Slot = "headline"
	SlotAbout           Slot = "about"
	SlotExperience      Slot = "experience"
	SlotEducation       Slot = "education"
	SlotSkills          Slot = "skills"
	SlotCerts           Slot = "certs"
	SlotRecommendations Slot = "recommendations"
)

var slots = []Slot{
	SlotHeadline,
	SlotAbout,
	SlotExperience,
	SlotEducation,
	SlotSkills,
	SlotCerts,
	SlotRecommendations,
}

// Slots returns every known slot in canonical order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// Sections maps a slot to its free-form text. Missing slots read as "".
type Sections map[Slot]string

// SectionsFromMap keeps the known slots of m and drops everything else.
func SectionsFromMap(m map[string]string) Sections {
	s := make(Sections, len(slots))
	for _, slot := range slots {
		if v, ok := m[string(slot)]; ok {
			s[slot] = v
		}
	}
	return s
}

// Get returns the text for slot, or "" when the slot is absent.
func (s Sections) Get(slot Slot) string {
	if s == nil {
		return ""
	}
	return s[slot]
}

// Combined joins every slot with a single space, in canonical order.
func (s Sections) Combined() string {
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = s.Get(slot)
	}
	return strings.Join(parts, " ")
}
