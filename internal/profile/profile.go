package profile

import (
	"sort"
	"strings"
)

// Experience levels used as seniority band names.
const (
	LevelJunior = "Junior"
	LevelMid    = "Mid-level"
	LevelSenior = "Senior"
)

// Band is an inclusive range of years of experience.
type Band struct {
	MinYears int `mapstructure:"min-years" json:"min_years"`
	MaxYears int `mapstructure:"max-years" json:"max_years"`
}

// NamedBand is a seniority band together with its level name.
type NamedBand struct {
	Name string
	Band
}

// RoleProfile is the scoring baseline for a target job title.
type RoleProfile struct {
	Name            string          `json:"name"`
	RequiredSkills  []string        `json:"required_skills"`
	PreferredSkills []string        `json:"preferred_skills"`
	ExperienceAreas []string        `json:"experience_areas"`
	SeniorityBands  map[string]Band `json:"seniority_bands"`
}

func defaultBands() map[string]Band {
	return map[string]Band{
		LevelJunior: {MinYears: 0, MaxYears: 2},
		LevelMid:    {MinYears: 3, MaxYears: 5},
		LevelSenior: {MinYears: 6, MaxYears: 40},
	}
}

// Generic returns the fallback profile used for roles missing from the catalog.
func Generic(name string) RoleProfile {
	return RoleProfile{
		Name:            name,
		RequiredSkills:  []string{"communication", "problem solving", "teamwork"},
		PreferredSkills: []string{"leadership", "project management", "time management"},
		ExperienceAreas: []string{"professional experience", "collaboration"},
		SeniorityBands:  defaultBands(),
	}
}

// Bands returns the seniority bands ordered by ascending minimum years.
// Bands with equal minimums are ordered by name.
func (p RoleProfile) Bands() []NamedBand {
	bands := p.SeniorityBands
	if len(bands) == 0 {
		bands = defaultBands()
	}

	result := make([]NamedBand, 0, len(bands))
	for name, band := range bands {
		result = append(result, NamedBand{Name: name, Band: band})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].MinYears == result[j].MinYears {
			return result[i].Name < result[j].Name
		}
		return result[i].MinYears < result[j].MinYears
	})

	return result
}

// MidBandMinimum returns the minimum years of the mid-level band. Profiles
// without a band of that name use the middle band of the ordered list.
func (p RoleProfile) MidBandMinimum() int {
	if band, ok := p.SeniorityBands[LevelMid]; ok {
		return band.MinYears
	}

	bands := p.Bands()
	return bands[len(bands)/2].MinYears
}

// AllSkills returns required then preferred skills without case-insensitive duplicates.
func (p RoleProfile) AllSkills() []string {
	seen := make(map[string]struct{}, len(p.RequiredSkills)+len(p.PreferredSkills))
	skills := make([]string, 0, len(p.RequiredSkills)+len(p.PreferredSkills))

	for _, list := range [][]string{p.RequiredSkills, p.PreferredSkills} {
		for _, skill := range list {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, skill)
		}
	}

	return skills
}

func (p RoleProfile) clone() RoleProfile {
	bands := make(map[string]Band, len(p.SeniorityBands))
	for name, band := range p.SeniorityBands {
		bands[name] = band
	}

	return RoleProfile{
		Name:            p.Name,
		RequiredSkills:  append([]string(nil), p.RequiredSkills...),
		PreferredSkills: append([]string(nil), p.PreferredSkills...),
		ExperienceAreas: append([]string(nil), p.ExperienceAreas...),
		SeniorityBands:  bands,
	}
}
