package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// maxPathDepth is the deepest nesting the patcher supports
// (e.g. "companyInfo.logo" is two levels, "a.b.c" is three).
const maxPathDepth = 3

// ApplyFieldChange returns a new document with exactly one field changed.
//
// For SectionPersonalInfo the field path must be a bare field name and index
// is ignored. For the collection sections the entry at index is replaced by a
// copy with the dotted fieldPath set to value; intermediate nested records
// are created when absent. The input document is never mutated; untouched
// sections and entries are shared with the input.
func ApplyFieldChange(doc Document, section Section, fieldPath string, value any, index int) (Document, error) {
	if !section.IsKnown() {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	segments := splitPath(fieldPath)
	if len(segments) == 0 {
		return Document{}, fmt.Errorf("%w: empty field path", ErrUnknownField)
	}
	if len(segments) > maxPathDepth {
		return Document{}, fmt.Errorf("%w: %q has %d levels", ErrPathTooDeep, fieldPath, len(segments))
	}

	if section == SectionPersonalInfo {
		if len(segments) > 1 {
			return Document{}, fmt.Errorf("%w: personalInfo fields do not nest", ErrPathTooDeep)
		}
		current := PersonalInfo{}
		if doc.PersonalInfo != nil {
			current = *doc.PersonalInfo
		}
		updated, err := patchValue(current, segments, value)
		if err != nil {
			return Document{}, err
		}
		out := doc
		out.PersonalInfo = &updated
		return out, nil
	}

	out := doc
	var err error
	switch section {
	case SectionExperience:
		out.Experience, err = patchEntry(doc.Experience, index, segments, value)
	case SectionEducation:
		out.Education, err = patchEntry(doc.Education, index, segments, value)
	case SectionSkills:
		out.Skills, err = patchEntry(doc.Skills, index, segments, value)
	case SectionProjects:
		out.Projects, err = patchEntry(doc.Projects, index, segments, value)
	case SectionSocialLinks:
		out.SocialLinks, err = patchEntry(doc.SocialLinks, index, segments, value)
	}
	if err != nil {
		return Document{}, err
	}
	return out, nil
}

// patchEntry replaces list[index] with a copy whose path is set to value.
// All other elements are shared with the input slice.
func patchEntry[T any](list []T, index int, segments []string, value any) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(list))
	}
	updated, err := patchValue(list[index], segments, value)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(list))
	copy(out, list)
	out[index] = updated
	return out, nil
}

// patchValue round-trips the entity through its JSON form, sets the path on
// the generic map, and decodes strictly back into the entity type so unknown
// fields and mismatched value types are rejected instead of silently dropped.
func patchValue[T any](entity T, segments []string, value any) (T, error) {
	var zero T
	m, err := entityToMap(entity)
	if err != nil {
		return zero, err
	}
	setPath(m, segments, value)
	var updated T
	if err := decodeStrict(m, &updated); err != nil {
		return zero, err
	}
	return updated, nil
}

func splitPath(fieldPath string) []string {
	trimmed := strings.TrimSpace(fieldPath)
	if trimmed == "" {
		return nil
	}
	segments := strings.Split(trimmed, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil
		}
	}
	return segments
}

// setPath walks the map creating intermediate records as needed and sets the
// leaf. The map is freshly built by the caller, so in-place writes are safe.
func setPath(m map[string]any, segments []string, value any) {
	cur := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segments[len(segments)-1]] = value
}

func entityToMap(entity any) (map[string]any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func decodeStrict(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode patched entity: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return fmt.Errorf("%w %q: got %s", ErrInvalidValue, typeErr.Field, typeErr.Value)
		}
		if strings.Contains(err.Error(), "unknown field") {
			return fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return fmt.Errorf("decode patched entity: %w", err)
	}
	return nil
}
