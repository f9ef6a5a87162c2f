package signals

// Vocabularies matched as lower-case substrings.
var (
	ActionVerbs = []string{
		"led", "managed", "developed", "built", "designed", "implemented",
		"created", "improved", "increased", "reduced", "launched", "delivered",
		"achieved", "optimized", "coordinated", "established",
	}

	Buzzwords = []string{
		"synergy", "go-getter", "team player", "hard worker", "detail-oriented",
		"self-starter", "think outside the box", "results-driven", "dynamic",
		"passionate", "motivated", "best of breed",
	}

	IndustryTerms = []string{
		"agile", "scrum", "ci/cd", "cloud", "microservices", "devops",
		"saas", "kpi", "roi", "stakeholder", "cross-functional", "scalable",
	}

	ExperienceSectionMarkers = []string{"experience", "employment", "work history"}
	EducationSectionMarkers  = []string{"education", "university", "degree", "bachelor", "master"}
	SkillsSectionMarkers     = []string{"skills", "technologies", "competencies"}

	TeamworkMarkers = []string{"team", "led"}
	ProjectMarkers  = []string{"project", "built"}
)
