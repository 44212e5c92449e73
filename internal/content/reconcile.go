package content

import "fmt"

// Reconcile returns a new document equal to fresh in every field except
// section, which is replaced wholesale by edited. Editing surfaces hold only
// their own section in memory; splicing it into a freshly loaded document at
// save time keeps concurrent edits to other sections from being clobbered.
// The merge is last-write-wins at section granularity: two edits to the same
// section still race and the later save wins outright.
func Reconcile(fresh Document, section Section, edited any) (Document, error) {
	out := fresh
	switch section {
	case SectionPersonalInfo:
		info, ok := edited.(PersonalInfo)
		if !ok {
			return Document{}, fmt.Errorf("%w: personalInfo expects a PersonalInfo value", ErrInvalidValue)
		}
		out.PersonalInfo = &info
	case SectionExperience:
		list, ok := edited.([]WorkExperience)
		if !ok {
			return Document{}, fmt.Errorf("%w: experience expects []WorkExperience", ErrInvalidValue)
		}
		out.Experience = list
	case SectionEducation:
		list, ok := edited.([]EducationEntry)
		if !ok {
			return Document{}, fmt.Errorf("%w: education expects []EducationEntry", ErrInvalidValue)
		}
		out.Education = list
	case SectionSkills:
		list, ok := edited.([]SkillEntry)
		if !ok {
			return Document{}, fmt.Errorf("%w: skills expects []SkillEntry", ErrInvalidValue)
		}
		out.Skills = list
	case SectionProjects:
		list, ok := edited.([]ProjectEntry)
		if !ok {
			return Document{}, fmt.Errorf("%w: projects expects []ProjectEntry", ErrInvalidValue)
		}
		out.Projects = list
	case SectionSocialLinks:
		list, ok := edited.([]SocialLinkEntry)
		if !ok {
			return Document{}, fmt.Errorf("%w: socialLinks expects []SocialLinkEntry", ErrInvalidValue)
		}
		out.SocialLinks = list
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return out, nil
}
