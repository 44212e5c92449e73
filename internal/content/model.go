package content

// Section names the editable parts of the portfolio document: the
// personalInfo singleton plus the five ordered entity collections.
type Section string

const (
	SectionPersonalInfo Section = "personalInfo"
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionProjects     Section = "projects"
	SectionSocialLinks  Section = "socialLinks"
)

// CollectionSections lists the five repeatable entity collections in
// document order.
var CollectionSections = []Section{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionSocialLinks,
}

// IsCollection reports whether the section is one of the five ordered
// collections (everything except personalInfo).
func (s Section) IsCollection() bool {
	for _, c := range CollectionSections {
		if s == c {
			return true
		}
	}
	return false
}

// IsKnown reports whether the section is a valid part of the document.
func (s Section) IsKnown() bool {
	return s == SectionPersonalInfo || s.IsCollection()
}

// Document is the root aggregate holding all portfolio content. The JSON
// field names are the persisted wire format and must not change.
type Document struct {
	PersonalInfo *PersonalInfo    `json:"personalInfo"`
	Experience   []WorkExperience `json:"experience"`
	Education    []EducationEntry `json:"education"`
	Skills       []SkillEntry     `json:"skills"`
	Projects     []ProjectEntry   `json:"projects"`
	SocialLinks  []SocialLinkEntry `json:"socialLinks"`
}

// PersonalInfo is the singleton record describing the site owner.
type PersonalInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Bio          string `json:"bio"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// WorkExperience is one entry in the work history collection.
type WorkExperience struct {
	ID          string       `json:"id"`
	Company     string       `json:"company"`
	Role        string       `json:"role"`
	Duration    string       `json:"duration"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate,omitempty"`
	Current     bool         `json:"current"`
	Description []string     `json:"description"`
	Location    string       `json:"location,omitempty"`
	CompanyInfo *CompanyInfo `json:"companyInfo,omitempty"`
}

// CompanyInfo is the optional nested record describing the employer.
type CompanyInfo struct {
	Industry    string `json:"industry,omitempty"`
	Founded     string `json:"founded,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// EducationEntry is one entry in the education collection.
type EducationEntry struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	Duration     string `json:"duration"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Skill categories form a closed set.
const (
	SkillCategoryTechnical = "technical"
	SkillCategorySoft      = "soft"
	SkillCategoryLanguage  = "language"
	SkillCategoryTool      = "tool"
)

// Skill proficiency levels form a closed set.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// SkillEntry is one entry in the skills collection.
type SkillEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ProjectEntry is one entry in the projects collection.
type ProjectEntry struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Technologies []string      `json:"technologies"`
	Links        *ProjectLinks `json:"links,omitempty"`
	Image        string        `json:"image,omitempty"`
	// RelatedCompany is a display grouping tag, not a foreign key.
	RelatedCompany string `json:"relatedCompany,omitempty"`
}

// ProjectLinks is the optional nested record of project URLs.
type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Live   string `json:"live,omitempty"`
	Demo   string `json:"demo,omitempty"`
}

// SocialLinkEntry is one entry in the social links collection. Platform is
// free text; display logic elsewhere may special-case known names.
type SocialLinkEntry struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}
