package main

import (
	"fmt"
	"os"

	"github.com/fadilmartias/profile-analyzer/internal/dto"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type profileFlag struct {
	name  string
	usage string
	field func(*dto.AnalyzeRequest) *string
}

var profileFlags = []profileFlag{
	{"headline", "profile headline", func(r *dto.AnalyzeRequest) *string { return &r.Headline }},
	{"about", "about / summary section", func(r *dto.AnalyzeRequest) *string { return &r.About }},
	{"experience", "experience section", func(r *dto.AnalyzeRequest) *string { return &r.Experience }},
	{"education", "education section", func(r *dto.AnalyzeRequest) *string { return &r.Education }},
	{"skills", "skills section", func(r *dto.AnalyzeRequest) *string { return &r.Skills }},
	{"certs", "licenses and certifications", func(r *dto.AnalyzeRequest) *string { return &r.Certs }},
	{"recommendations", "recommendations received", func(r *dto.AnalyzeRequest) *string { return &r.Recommendations }},
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "JSON or YAML file with the profile sections")
	for _, f := range profileFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
}

// profileFromFlags reads --file first and lets explicit section flags override it.
func profileFromFlags(cmd *cobra.Command) (dto.AnalyzeRequest, error) {
	var req dto.AnalyzeRequest

	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return req, err
	}
	if path != "" {
		req, err = readProfileFile(path)
		if err != nil {
			return req, err
		}
	}

	for _, f := range profileFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return req, err
		}
		*f.field(&req) = v
	}
	return req, nil
}

// readProfileFile decodes a JSON or YAML mapping of slot name to text. Keys
// that are not profile slots are rejected so typos do not silently score as
// empty sections.
func readProfileFile(path string) (dto.AnalyzeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dto.AnalyzeRequest{}, err
	}

	var raw map[string]string
	// JSON documents are valid YAML.
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return dto.AnalyzeRequest{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	sections := scoring.SectionsFromMap(raw)
	for key := range raw {
		if _, ok := sections[scoring.Slot(key)]; !ok {
			return dto.AnalyzeRequest{}, fmt.Errorf("%s: unknown profile section %q", path, key)
		}
	}
	return dto.AnalyzeRequestFromSections(sections), nil
}
