package llm

// BuildCaseJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// normalized extraction, as a generic map. Validated locally after the
// repair and sanitize passes; deliberately loose on optionals because
// models omit freely.
func BuildCaseJSONSchema() map[string]any {
	nameObj := func(extra map[string]any) map[string]any {
		props := map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
		}
		for k, v := range extra {
			props[k] = v
		}
		return map[string]any{
			"type":       "object",
			"properties": props,
			"required":   []string{"name"},
		}
	}
	str := map[string]any{"type": "string"}
	arrOf := func(items map[string]any) map[string]any {
		return map[string]any{"type": "array", "items": items}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":              str,
			"case_type":            str,
			"county":               str,
			"trial_court":          str,
			"trial_judge":          str,
			"source_docket_number": str,
			"appeal_outcome":       str,
			"outcome_detail":       str,
			"winner_legal_role":    str,
			"winner_personal_role": str,
			"oral_argument_date":   str,
			"opinion_filed_date":   str,
			"parties": arrOf(nameObj(map[string]any{
				"role":          str,
				"personal_role": str,
				"party_type":    str,
			})),
			"judges": arrOf(nameObj(map[string]any{
				"role": str,
			})),
			"attorneys": arrOf(nameObj(map[string]any{
				"representing": str,
				"firm_name":    str,
				"firm_address": str,
			})),
			"citations": arrOf(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"full_citation": map[string]any{"type": "string", "minLength": 1},
					"case_name":     str,
					"relationship":  str,
				},
				"required": []string{"full_citation"},
			}),
			"statutes": arrOf(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"citation": map[string]any{"type": "string", "minLength": 1},
					"title":    str,
				},
				"required": []string{"citation"},
			}),
			"issues": arrOf(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"summary":     map[string]any{"type": "string", "minLength": 1},
					"category":    str,
					"subcategory": str,
					"outcome":     str,
					"winner":      str,
				},
				"required": []string{"summary"},
			}),
			"arguments": arrOf(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"side": str,
					"text": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []string{"text"},
			}),
		},
		"required": []string{"summary"},
	}
}
