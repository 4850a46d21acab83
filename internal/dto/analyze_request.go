package dto

import (
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/go-playground/validator/v10"
)

// MaxSectionLength bounds a single pasted section, in characters.
const MaxSectionLength = 20000

var validate = validator.New()

type AnalyzeRequest struct {
	Headline        string `json:"headline" yaml:"headline" validate:"max=20000"`
	About           string `json:"about" yaml:"about" validate:"max=20000"`
	Experience      string `json:"experience" yaml:"experience" validate:"max=20000"`
	Education       string `json:"education" yaml:"education" validate:"max=20000"`
	Skills          string `json:"skills" yaml:"skills" validate:"max=20000"`
	Certs           string `json:"certs" yaml:"certs" validate:"max=20000"`
	Recommendations string `json:"recommendations" yaml:"recommendations" validate:"max=20000"`
}

func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

func (r *AnalyzeRequest) Sections() scoring.Sections {
	return scoring.Sections{
		scoring.SlotHeadline:        r.Headline,
		scoring.SlotAbout:           r.About,
		scoring.SlotExperience:      r.Experience,
		scoring.SlotEducation:       r.Education,
		scoring.SlotSkills:          r.Skills,
		scoring.SlotCerts:           r.Certs,
		scoring.SlotRecommendations: r.Recommendations,
	}
}

// AnalyzeRequestFromSections is the inverse of Sections.
func AnalyzeRequestFromSections(s scoring.Sections) AnalyzeRequest {
	return AnalyzeRequest{
		Headline:        s.Get(scoring.SlotHeadline),
		About:           s.Get(scoring.SlotAbout),
		Experience:      s.Get(scoring.SlotExperience),
		Education:       s.Get(scoring.SlotEducation),
		Skills:          s.Get(scoring.SlotSkills),
		Certs:           s.Get(scoring.SlotCerts),
		Recommendations: s.Get(scoring.SlotRecommendations),
	}
}
