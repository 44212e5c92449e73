package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ValidateShape enforces the narrow save-boundary contract: personalInfo,
// experience, and education must be present. The other collections may be
// absent at this layer.
func ValidateShape(doc Document) error {
	var missing []string
	if doc.PersonalInfo == nil {
		missing = append(missing, "personalInfo")
	}
	if doc.Experience == nil {
		missing = append(missing, "experience")
	}
	if doc.Education == nil {
		missing = append(missing, "education")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidDocument, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateSchema checks the document against the embedded JSON schema:
// field types everywhere, closed sets for skill category and proficiency,
// and the same three hard-required top-level fields as ValidateShape.
func ValidateSchema(doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// IsComplete reports whether the document can be treated as authoritative on
// load: personalInfo present and every collection non-empty. A zero-length
// collection is deliberately conflated with a missing one, matching the
// documented fallback contract.
func IsComplete(doc Document) bool {
	if doc.PersonalInfo == nil {
		return false
	}
	return len(doc.Experience) > 0 &&
		len(doc.Education) > 0 &&
		len(doc.Skills) > 0 &&
		len(doc.Projects) > 0 &&
		len(doc.SocialLinks) > 0
}
