package llm

import (
	"encoding/json"
	"fmt"
)

// DecodeModelOutput runs a raw model response through the full recovery
// path: repair-parse, key normalization, schema validation. The returned
// bytes are the canonical re-marshaled JSON, suitable for audit storage.
func DecodeModelOutput(response string) (CaseExtraction, []byte, error) {
	parsed, err := ParseModelJSON(response)
	if err != nil {
		return CaseExtraction{}, nil, fmt.Errorf("parse model json: %w", err)
	}

	out, err := NormalizeResponse(parsed)
	if err != nil {
		return CaseExtraction{}, nil, fmt.Errorf("normalize response: %w", err)
	}

	canonical, err := json.Marshal(out)
	if err != nil {
		return CaseExtraction{}, nil, fmt.Errorf("marshal extraction: %w", err)
	}

	if err := ValidateJSONAgainstSchema(BuildCaseJSONSchema(), canonical); err != nil {
		return CaseExtraction{}, canonical, fmt.Errorf("schema validation failed: %w", err)
	}
	return out, canonical, nil
}
