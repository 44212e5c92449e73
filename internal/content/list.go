package content

import "fmt"

// AddEntry returns a new document with a blank, schema-valid entry of the
// section's type prepended at index 0. Existing entries shift down and are
// shared with the input.
func AddEntry(doc Document, section Section) (Document, error) {
	out := doc
	switch section {
	case SectionExperience:
		out.Experience = prepend(doc.Experience, DefaultExperience())
	case SectionEducation:
		out.Education = prepend(doc.Education, DefaultEducation())
	case SectionSkills:
		out.Skills = prepend(doc.Skills, DefaultSkill())
	case SectionProjects:
		out.Projects = prepend(doc.Projects, DefaultProject())
	case SectionSocialLinks:
		out.SocialLinks = prepend(doc.SocialLinks, DefaultSocialLink())
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return out, nil
}

// RemoveEntry returns a new document with the entry at index removed,
// preserving the relative order of all other entries.
func RemoveEntry(doc Document, section Section, index int) (Document, error) {
	out := doc
	var err error
	switch section {
	case SectionExperience:
		out.Experience, err = removeAt(doc.Experience, index)
	case SectionEducation:
		out.Education, err = removeAt(doc.Education, index)
	case SectionSkills:
		out.Skills, err = removeAt(doc.Skills, index)
	case SectionProjects:
		out.Projects, err = removeAt(doc.Projects, index)
	case SectionSocialLinks:
		out.SocialLinks, err = removeAt(doc.SocialLinks, index)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return Document{}, err
	}
	return out, nil
}

// UpdateEntry returns a new document with partial's keys shallow-merged onto
// the entry at index. Used for bulk replacements such as swapping an entire
// description array re-split from a multi-line text box.
func UpdateEntry(doc Document, section Section, index int, partial map[string]any) (Document, error) {
	out := doc
	var err error
	switch section {
	case SectionExperience:
		out.Experience, err = mergeAt(doc.Experience, index, partial)
	case SectionEducation:
		out.Education, err = mergeAt(doc.Education, index, partial)
	case SectionSkills:
		out.Skills, err = mergeAt(doc.Skills, index, partial)
	case SectionProjects:
		out.Projects, err = mergeAt(doc.Projects, index, partial)
	case SectionSocialLinks:
		out.SocialLinks, err = mergeAt(doc.SocialLinks, index, partial)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return Document{}, err
	}
	return out, nil
}

func prepend[T any](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	return append(out, list...)
}

func removeAt[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(list))
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), nil
}

func mergeAt[T any](list []T, index int, partial map[string]any) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(list))
	}
	m, err := entityToMap(list[index])
	if err != nil {
		return nil, err
	}
	for k, v := range partial {
		m[k] = v
	}
	var updated T
	if err := decodeStrict(m, &updated); err != nil {
		return nil, err
	}
	out := make([]T, len(list))
	copy(out, list)
	out[index] = updated
	return out, nil
}
