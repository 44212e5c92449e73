package content

import "github.com/google/uuid"

// DefaultDocument returns the built-in fallback document used when the
// backing store is absent or incomplete. Every call returns a fresh value
// with newly assigned entity ids.
func DefaultDocument() Document {
	return Document{
		PersonalInfo: &PersonalInfo{
			Name:     "Your Name",
			Title:    "Software Engineer",
			Location: "Somewhere, Earth",
			Bio:      "A short introduction about yourself goes here.",
			Email:    "you@example.com",
		},
		Experience: []WorkExperience{
			{
				ID:          uuid.NewString(),
				Company:     "Acme Corp",
				Role:        "Software Engineer",
				Duration:    "2022 - Present",
				StartDate:   "2022-01",
				Current:     true,
				Description: []string{"Describe what you built and shipped."},
				CompanyInfo: &CompanyInfo{},
			},
		},
		Education: []EducationEntry{
			{
				ID:          uuid.NewString(),
				Institution: "State University",
				Degree:      "B.Sc. Computer Science",
				Duration:    "2018 - 2022",
				StartDate:   "2018-09",
				EndDate:     "2022-06",
			},
		},
		Skills: []SkillEntry{
			{ID: uuid.NewString(), Name: "Go", Category: SkillCategoryTechnical, Proficiency: ProficiencyAdvanced},
			{ID: uuid.NewString(), Name: "Communication", Category: SkillCategorySoft},
		},
		Projects: []ProjectEntry{
			{
				ID:           uuid.NewString(),
				Name:         "Portfolio Website",
				Description:  "This very site.",
				Technologies: []string{"Go"},
				Links:        &ProjectLinks{},
			},
		},
		SocialLinks: []SocialLinkEntry{
			{ID: uuid.NewString(), Platform: "GitHub", URL: "https://github.com/you"},
		},
	}
}

// DefaultExperience returns a blank work experience entry for prepending.
func DefaultExperience() WorkExperience {
	return WorkExperience{
		ID:          uuid.NewString(),
		Current:     false,
		Description: []string{""},
		CompanyInfo: &CompanyInfo{},
	}
}

// DefaultEducation returns a blank education entry for prepending.
func DefaultEducation() EducationEntry {
	return EducationEntry{ID: uuid.NewString()}
}

// DefaultSkill returns a blank skill entry for prepending.
func DefaultSkill() SkillEntry {
	return SkillEntry{ID: uuid.NewString(), Category: SkillCategoryTechnical}
}

// DefaultProject returns a blank project entry for prepending.
func DefaultProject() ProjectEntry {
	return ProjectEntry{
		ID:           uuid.NewString(),
		Technologies: []string{},
		Links:        &ProjectLinks{},
	}
}

// DefaultSocialLink returns a blank social link entry for prepending.
func DefaultSocialLink() SocialLinkEntry {
	return SocialLinkEntry{ID: uuid.NewString()}
}
