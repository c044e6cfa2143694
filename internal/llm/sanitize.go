package llm

import (
	"encoding/json"
	"strings"
)

// nullish strings models emit instead of omitting a field.
var nullishValues = map[string]struct{}{
	"null": {}, "none": {}, "n/a": {}, "unknown": {},
	"not mentioned": {}, "not specified": {}, "not found": {},
}

func isNullish(s string) bool {
	_, ok := nullishValues[strings.ToLower(strings.TrimSpace(s))]
	return ok || strings.TrimSpace(s) == ""
}

// NormalizeResponse flattens the model's nested schema and its legacy key
// variants into one canonical map, then decodes it into CaseExtraction.
// Models drift between prompt versions; every synonym seen in production
// output is handled here.
func NormalizeResponse(m map[string]any) (CaseExtraction, error) {
	flat := flatten(m)

	b, err := json.Marshal(flat)
	if err != nil {
		return CaseExtraction{}, err
	}
	var out CaseExtraction
	if err := json.Unmarshal(b, &out); err != nil {
		return CaseExtraction{}, err
	}
	scrubNullish(&out)
	return out, nil
}

func flatten(m map[string]any) map[string]any {
	flat := make(map[string]any, len(m))
	for k, v := range m {
		flat[k] = v
	}

	// array synonyms
	renameMissing(flat, "parties_parsed", "parties")
	renameMissing(flat, "judicial_panel", "judges")
	renameMissing(flat, "legal_representation", "attorneys")
	renameMissing(flat, "cases_cited", "citations")
	renameMissing(flat, "issues_decisions", "issues")
	renameMissing(flat, "CATEGORIZED ISSUES WITH DECISIONS", "issues")
	renameMissing(flat, "precedents", "citations")
	renameMissing(flat, "case_category", "case_type")

	// originating_court nested fields
	if orig, ok := flat["originating_court"].(map[string]any); ok {
		liftMissing(flat, orig, "county", "county")
		liftMissing(flat, orig, "trial_court", "court_name")
		liftMissing(flat, orig, "trial_judge", "trial_judge")
		liftMissing(flat, orig, "source_docket_number", "source_docket_number")
	}

	// outcome nested fields
	if out, ok := flat["outcome"].(map[string]any); ok {
		liftMissing(flat, out, "appeal_outcome", "disposition")
		liftMissing(flat, out, "outcome_detail", "details")
		liftMissing(flat, out, "winner_legal_role", "prevailing_party")
	}

	// legal_analysis nested arrays
	if analysis, ok := flat["legal_analysis"].(map[string]any); ok {
		if issues, ok := analysis["major_issues"].([]any); ok {
			if _, exists := flat["issues"]; !exists {
				var converted []any
				for _, raw := range issues {
					issue, ok := raw.(map[string]any)
					if !ok {
						continue
					}
					converted = append(converted, map[string]any{
						"summary": issue["question"],
						"outcome": issue["ruling"],
					})
				}
				flat["issues"] = converted
			}
		}
		if statutes, ok := analysis["key_statutes_cited"].([]any); ok {
			if _, exists := flat["statutes"]; !exists {
				var converted []any
				for _, raw := range statutes {
					if s, ok := raw.(string); ok && !isNullish(s) {
						converted = append(converted, map[string]any{"citation": s})
					}
				}
				flat["statutes"] = converted
			}
		}
	}

	// procedural_dates nested fields
	if dates, ok := flat["procedural_dates"].(map[string]any); ok {
		liftMissing(flat, dates, "oral_argument_date", "oral_argument_date")
		liftMissing(flat, dates, "opinion_filed_date", "opinion_filed_date")
	}

	// per-element key synonyms inside the arrays
	normalizeElements(flat, "parties", map[string]string{"party_name": "name", "appellate_role": "role"})
	normalizeElements(flat, "judges", map[string]string{"judge_name": "name"})
	normalizeElements(flat, "attorneys", map[string]string{
		"attorney_name": "name", "representation": "representing",
		"role": "representing", "firm_or_agency": "firm_name",
	})

	// citations sometimes come as bare strings
	if arr, ok := flat["citations"].([]any); ok {
		var cleaned []any
		for _, raw := range arr {
			switch v := raw.(type) {
			case string:
				if !isNullish(v) {
					cleaned = append(cleaned, map[string]any{"full_citation": v})
				}
			case map[string]any:
				if fc, _ := v["full_citation"].(string); fc != "" && !isNullish(fc) {
					cleaned = append(cleaned, v)
				} else if c, _ := v["citation"].(string); c != "" && !isNullish(c) {
					v["full_citation"] = c
					cleaned = append(cleaned, v)
				}
			}
		}
		flat["citations"] = cleaned
	}

	return flat
}

// renameMissing moves m[from] to m[to] when the target key is absent.
func renameMissing(m map[string]any, from, to string) {
	if _, exists := m[to]; exists {
		return
	}
	if v, ok := m[from]; ok {
		m[to] = v
		delete(m, from)
	}
}

// liftMissing copies a nested field to the top level when the target key is
// absent or empty.
func liftMissing(m, nested map[string]any, to, from string) {
	if v, ok := m[to].(string); ok && !isNullish(v) {
		return
	}
	if v, ok := nested[from].(string); ok && !isNullish(v) {
		m[to] = v
	}
}

// normalizeElements applies key renames inside every object of an array
// field and drops non-object elements.
func normalizeElements(m map[string]any, field string, renames map[string]string) {
	arr, ok := m[field].([]any)
	if !ok {
		return
	}
	var cleaned []any
	for _, raw := range arr {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for from, to := range renames {
			if _, exists := obj[to]; exists {
				continue
			}
			if v, ok := obj[from]; ok {
				obj[to] = v
				delete(obj, from)
			}
		}
		if name, _ := obj["name"].(string); name == "" || isNullish(name) {
			continue
		}
		cleaned = append(cleaned, obj)
	}
	m[field] = cleaned
}

// scrubNullish empties fields that decoded to null-markers rather than
// content.
func scrubNullish(out *CaseExtraction) {
	clear := func(s *string) {
		if isNullish(*s) {
			*s = ""
		}
	}
	clear(&out.CaseType)
	clear(&out.County)
	clear(&out.TrialCourt)
	clear(&out.TrialJudge)
	clear(&out.SourceDocketNumber)
	clear(&out.AppealOutcome)
	clear(&out.OutcomeDetail)
	clear(&out.WinnerLegalRole)
	clear(&out.WinnerPersonalRole)
	clear(&out.OralArgumentDate)
	clear(&out.OpinionFiledDate)

	if isNullish(out.Summary) {
		out.Summary = ""
	}

	issues := out.Issues[:0]
	for _, i := range out.Issues {
		if !isNullish(i.Summary) {
			issues = append(issues, i)
		}
	}
	out.Issues = issues

	parties := out.Parties[:0]
	for _, p := range out.Parties {
		if !isNullish(p.Name) {
			parties = append(parties, p)
		}
	}
	out.Parties = parties

	judges := out.Judges[:0]
	for _, j := range out.Judges {
		if !isNullish(j.Name) {
			judges = append(judges, j)
		}
	}
	out.Judges = judges

	attorneys := out.Attorneys[:0]
	for _, a := range out.Attorneys {
		if !isNullish(a.Name) {
			attorneys = append(attorneys, a)
		}
	}
	out.Attorneys = attorneys

	statutes := out.Statutes[:0]
	for _, s := range out.Statutes {
		if !isNullish(s.Citation) {
			statutes = append(statutes, s)
		}
	}
	out.Statutes = statutes

	citations := out.Citations[:0]
	for _, c := range out.Citations {
		if !isNullish(c.FullCitation) {
			citations = append(citations, c)
		}
	}
	out.Citations = citations

	arguments := out.Arguments[:0]
	for _, a := range out.Arguments {
		if !isNullish(a.Text) {
			arguments = append(arguments, a)
		}
	}
	out.Arguments = arguments
}
