package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	trailingCommaObjRe = regexp.MustCompile(`,\s*}`)
	trailingCommaArrRe = regexp.MustCompile(`,\s*]`)
)

// salvage regexes pull individual fields out of JSON that no repair
// strategy could make parseable.
var (
	salvageStringFields = map[string]*regexp.Regexp{
		"summary":              regexp.MustCompile(`"summary"\s*:\s*"([^"]*(?:\\"[^"]*)*)"`),
		"case_type":            regexp.MustCompile(`"case_type"\s*:\s*"([^"]*)"`),
		"county":               regexp.MustCompile(`"county"\s*:\s*"([^"]*)"`),
		"trial_judge":          regexp.MustCompile(`"trial_judge"\s*:\s*"([^"]*)"`),
		"source_docket_number": regexp.MustCompile(`"source_docket_number"\s*:\s*"([^"]*)"`),
		"appeal_outcome":       regexp.MustCompile(`"appeal_outcome"\s*:\s*"([^"]*)"`),
		"winner_legal_role":    regexp.MustCompile(`"winner_legal_role"\s*:\s*"([^"]*)"`),
		"winner_personal_role": regexp.MustCompile(`"winner_personal_role"\s*:\s*"([^"]*)"`),
	}

	salvageArrayFields = []struct {
		target string
		res    []*regexp.Regexp
	}{
		{"parties_parsed", []*regexp.Regexp{
			regexp.MustCompile(`(?s)"parties_parsed"\s*:\s*\[(.*?)\]`),
			regexp.MustCompile(`(?s)"parties"\s*:\s*\[(.*?)\]`),
		}},
		{"judicial_panel", []*regexp.Regexp{
			regexp.MustCompile(`(?s)"judicial_panel"\s*:\s*\[(.*?)\]`),
			regexp.MustCompile(`(?s)"judges"\s*:\s*\[(.*?)\]`),
		}},
		{"legal_representation", []*regexp.Regexp{
			regexp.MustCompile(`(?s)"legal_representation"\s*:\s*\[(.*?)\]`),
		}},
		{"citations", []*regexp.Regexp{
			regexp.MustCompile(`(?s)"citations"\s*:\s*\[(.*?)\]`),
		}},
		{"statutes", []*regexp.Regexp{
			regexp.MustCompile(`(?s)"statutes"\s*:\s*\[(.*?)\]`),
		}},
		{"issues", []*regexp.Regexp{
			regexp.MustCompile(`(?s)"issues"\s*:\s*\[(.*?)\]`),
		}},
	}
)

// ParseModelJSON decodes a model response into a generic map, tolerating
// the usual failure modes: markdown fences, prose around the object,
// trailing commas, single quotes, and truncated output. As a last resort
// individual fields are salvaged by regex.
func ParseModelJSON(response string) (map[string]any, error) {
	text := strings.TrimSpace(response)

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		// truncated output, no closing brace
		return repairJSON(text[start:])
	}
	jsonStr := text[start : end+1]

	var m map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &m); err == nil {
		return m, nil
	}
	return repairJSON(jsonStr)
}

func repairJSON(jsonStr string) (map[string]any, error) {
	original := jsonStr

	// strategy 1: trailing commas
	fixed := trailingCommaObjRe.ReplaceAllString(jsonStr, "}")
	fixed = trailingCommaArrRe.ReplaceAllString(fixed, "]")
	var m map[string]any
	if err := json.Unmarshal([]byte(fixed), &m); err == nil {
		return m, nil
	}

	// strategy 2: single quotes, then trailing commas again
	fixed = strings.ReplaceAll(original, "'", `"`)
	fixed = trailingCommaObjRe.ReplaceAllString(fixed, "}")
	fixed = trailingCommaArrRe.ReplaceAllString(fixed, "]")
	if err := json.Unmarshal([]byte(fixed), &m); err == nil {
		return m, nil
	}

	// strategy 3: per-field salvage from the original text
	result := salvageFields(original)
	if len(result) > 0 {
		return result, nil
	}
	return nil, fmt.Errorf("unable to repair model JSON")
}

func salvageFields(original string) map[string]any {
	result := make(map[string]any)

	for key, re := range salvageStringFields {
		if m := re.FindStringSubmatch(original); m != nil {
			result[key] = strings.ReplaceAll(m[1], `\"`, `"`)
		}
	}

	for _, f := range salvageArrayFields {
		for _, re := range f.res {
			m := re.FindStringSubmatch(original)
			if m == nil {
				continue
			}
			arrJSON := trailingCommaArrRe.ReplaceAllString("["+m[1]+"]", "]")
			var arr []any
			if err := json.Unmarshal([]byte(arrJSON), &arr); err == nil {
				result[f.target] = arr
			}
			break
		}
	}

	return result
}
