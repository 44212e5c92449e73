package content

import "encoding/json"

// saveResponse is the body returned by mutating endpoints.
type saveResponse struct {
	Success  bool      `json:"success"`
	Document *Document `json:"document,omitempty"`
}

// entryPatchRequest carries either a single field change (fieldPath + value)
// or a shallow entry merge (entry).
type entryPatchRequest struct {
	FieldPath string          `json:"fieldPath,omitempty"`
	Value     json.RawMessage `json:"value,omitempty"`
	Entry     map[string]any  `json:"entry,omitempty"`
}

// fieldChangeRequest carries a field change for the personalInfo singleton.
type fieldChangeRequest struct {
	FieldPath string          `json:"fieldPath"`
	Value     json.RawMessage `json:"value"`
}
