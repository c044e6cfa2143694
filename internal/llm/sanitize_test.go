package llm

import "testing"

func TestNormalizeResponseNestedSchema(t *testing.T) {
	m := map[string]any{
		"summary":       "The court reversed and remanded.",
		"case_category": "criminal",
		"originating_court": map[string]any{
			"county":               "Spokane",
			"court_name":           "Spokane County Superior Court",
			"trial_judge":          "Harold Clarke",
			"source_docket_number": "21-1-00123-32",
		},
		"outcome": map[string]any{
			"disposition":      "reversed",
			"details":          "Reversed and remanded for new trial",
			"prevailing_party": "Appellant",
		},
		"parties_parsed": []any{
			map[string]any{"name": "State of Washington", "appellate_role": "Respondent"},
			map[string]any{"name": "John Mayfield", "appellate_role": "Appellant"},
		},
		"judicial_panel": []any{
			map[string]any{"judge_name": "Fearing", "role": "Authored by"},
		},
		"legal_representation": []any{
			map[string]any{"attorney_name": "Jane Counsel", "representing": "John Mayfield", "firm_or_agency": "Washington Appellate Project"},
		},
		"legal_analysis": map[string]any{
			"key_statutes_cited": []any{"RCW 9A.44.073", "null"},
			"major_issues": []any{
				map[string]any{"question": "Was the search lawful?", "ruling": "No."},
			},
		},
		"procedural_dates": map[string]any{
			"opinion_filed_date": "2024-01-16",
		},
	}

	out, err := NormalizeResponse(m)
	if err != nil {
		t.Fatalf("NormalizeResponse() error: %v", err)
	}

	if out.CaseType != "criminal" {
		t.Errorf("CaseType = %q", out.CaseType)
	}
	if out.County != "Spokane" || out.TrialJudge != "Harold Clarke" {
		t.Errorf("originating court not lifted: county=%q judge=%q", out.County, out.TrialJudge)
	}
	if out.AppealOutcome != "reversed" || out.WinnerLegalRole != "Appellant" {
		t.Errorf("outcome not lifted: %q / %q", out.AppealOutcome, out.WinnerLegalRole)
	}
	if len(out.Parties) != 2 || out.Parties[1].Name != "John Mayfield" || out.Parties[1].Role != "Appellant" {
		t.Errorf("parties = %+v", out.Parties)
	}
	if len(out.Judges) != 1 || out.Judges[0].Name != "Fearing" || out.Judges[0].Role != "Authored by" {
		t.Errorf("judges = %+v", out.Judges)
	}
	if len(out.Attorneys) != 1 || out.Attorneys[0].FirmName != "Washington Appellate Project" {
		t.Errorf("attorneys = %+v", out.Attorneys)
	}
	if len(out.Statutes) != 1 || out.Statutes[0].Citation != "RCW 9A.44.073" {
		t.Errorf("statutes = %+v (nullish entries must drop)", out.Statutes)
	}
	if len(out.Issues) != 1 || out.Issues[0].Summary != "Was the search lawful?" || out.Issues[0].Outcome != "No." {
		t.Errorf("issues = %+v", out.Issues)
	}
	if out.OpinionFiledDate != "2024-01-16" {
		t.Errorf("OpinionFiledDate = %q", out.OpinionFiledDate)
	}
}

func TestNormalizeResponseFlatLegacyKeys(t *testing.T) {
	m := map[string]any{
		"summary":   "Affirmed.",
		"case_type": "civil",
		"county":    "King",
		"judges": []any{
			map[string]any{"name": "Madsen", "role": "Dissenting"},
			map[string]any{"judge_name": "", "role": "Concurring"}, // empty name drops
		},
		"citations": []any{
			"State v. Smith, 150 Wn.2d 489 (2003)",
			map[string]any{"full_citation": "Doe v. Roe, 15 Wn. App. 2d 620"},
			map[string]any{"citation": "In re Gresham, 173 Wn.2d 405"},
			map[string]any{"case_name": "No citation here"},
		},
	}

	out, err := NormalizeResponse(m)
	if err != nil {
		t.Fatalf("NormalizeResponse() error: %v", err)
	}
	if len(out.Judges) != 1 {
		t.Errorf("judges = %+v, want empty-name entry dropped", out.Judges)
	}
	if len(out.Citations) != 3 {
		t.Fatalf("citations = %+v, want 3", out.Citations)
	}
	if out.Citations[0].FullCitation != "State v. Smith, 150 Wn.2d 489 (2003)" {
		t.Errorf("bare-string citation = %+v", out.Citations[0])
	}
	if out.Citations[2].FullCitation != "In re Gresham, 173 Wn.2d 405" {
		t.Errorf("citation-key synonym = %+v", out.Citations[2])
	}
}

func TestNormalizeResponseNullishScrub(t *testing.T) {
	m := map[string]any{
		"summary":        "ok",
		"county":         "N/A",
		"trial_judge":    "not mentioned",
		"appeal_outcome": "null",
	}
	out, err := NormalizeResponse(m)
	if err != nil {
		t.Fatalf("NormalizeResponse() error: %v", err)
	}
	if out.County != "" || out.TrialJudge != "" || out.AppealOutcome != "" {
		t.Errorf("nullish values not scrubbed: %+v", out)
	}
}

func TestDecodeModelOutput(t *testing.T) {
	response := "```json\n" + `{
		"summary": "The court affirmed the conviction.",
		"case_category": "criminal",
		"judicial_panel": [{"judge_name": "Fearing", "role": "Authored by"},]
	}` + "\n```"

	out, raw, err := DecodeModelOutput(response)
	if err != nil {
		t.Fatalf("DecodeModelOutput() error: %v", err)
	}
	if out.Summary != "The court affirmed the conviction." || out.CaseType != "criminal" {
		t.Errorf("out = %+v", out)
	}
	if len(raw) == 0 {
		t.Error("canonical JSON not returned")
	}
}
