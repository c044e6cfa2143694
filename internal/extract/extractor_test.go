package extract

import (
	"testing"

	"github.com/wacaselaw/opinion-indexer/constants"
)

func TestExtractDivision(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Division
	}{
		{"spelled out", "IN THE COURT OF APPEALS OF THE STATE OF WASHINGTON\nDIVISION THREE\n", constants.DivisionIII},
		{"roman numeral", "COURT OF APPEALS, DIVISION II\n", constants.DivisionII},
		{"arabic numeral", "COURT OF APPEALS DIVISION 1\n", constants.DivisionI},
		{"docket suffix fallback", "No. 39019-5-III\nSTATE OF WASHINGTON, Respondent, v. JOHN DOE, Appellant\n", constants.DivisionIII},
		{"no marker", "IN THE SUPREME COURT OF THE STATE OF WASHINGTON\n", constants.DivisionNA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDivision(tt.text); got != tt.want {
				t.Errorf("extractDivision() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCourtLevel(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      constants.CourtLevel
		wantFound bool
	}{
		{"supreme", "IN THE SUPREME COURT OF THE STATE OF WASHINGTON", constants.Supreme, true},
		{"appeals", "IN THE COURT OF APPEALS OF THE STATE OF WASHINGTON", constants.Appeals, true},
		{"no marker defaults to appeals", "some unrelated header text", constants.Appeals, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractCourtLevel(tt.text)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("extractCourtLevel() = (%q, %v), want (%q, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestExtractPublication(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.PublicationStatus
	}{
		{"unpublished", "UNPUBLISHED OPINION\n", constants.Unpublished},
		{"published in part", "OPINION PUBLISHED IN PART\n", constants.PartiallyPublished},
		{"default published", "OPINION\n", constants.Published},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPublication(tt.text); got != tt.want {
				t.Errorf("extractPublication() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCaseNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"standard", "No. 39019-5-III", "39019-5-III"},
		{"no suffix", "No. 101483-2", "101483-2"},
		{"comma separated", "No. 39019,1-5-III", "39019,1-5-III"},
		{"missing", "no docket here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractCaseNumber(tt.text); got != tt.want {
				t.Errorf("extractCaseNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

// First matching outcome pattern wins; compound dispositions outrank the
// single-clause forms they contain.
func TestExtractOutcomeOrdering(t *testing.T) {
	tests := []struct {
		name       string
		footer     string
		want       constants.AppealOutcome
		wantDetail string
		wantFound  bool
	}{
		{
			"affirm in part reverse in part",
			"For the reasons above, the judgment is affirmed in part and reversed in part.",
			constants.Affirmed, "affirmed in part, reversed in part", true,
		},
		{
			"reverse in part affirm in part",
			"The order is reversed in part and affirmed in part.",
			constants.Reversed, "reversed in part, affirmed in part", true,
		},
		{
			"reverse and remand beats bare remand",
			"We reverse and remand for further proceedings.",
			constants.Reversed, "reversed and remanded", true,
		},
		{
			"we affirm",
			"Accordingly, we affirm.",
			constants.Affirmed, "", true,
		},
		{
			"is hereby dismissed",
			"The petition is hereby dismissed.",
			constants.Dismissed, "", true,
		},
		{
			"bare past tense",
			"Reversed.",
			constants.Reversed, "", true,
		},
		{
			"no disposition",
			"The parties presented oral argument.",
			constants.UnknownOutcome, "", false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, detail, found := extractOutcome(tt.footer)
			if got != tt.want || detail != tt.wantDetail || found != tt.wantFound {
				t.Errorf("extractOutcome() = (%q, %q, %v), want (%q, %q, %v)",
					got, detail, found, tt.want, tt.wantDetail, tt.wantFound)
			}
		})
	}
}

func TestExtractJudges(t *testing.T) {
	header := "IN THE SUPREME COURT OF THE STATE OF WASHINGTON\n\nMONTOYA-LEWIS, J.— This case concerns the duty of care.\n"
	text := header + `
The remainder of the opinion follows.

Gordon McCloud, J., concurring.

Madsen, J., dissenting.
`
	judges := extractJudges(text, header)

	wantAuthor := "Montoya-Lewis"
	if len(judges) == 0 || judges[0].Name != wantAuthor || judges[0].Role != RoleAuthor {
		t.Fatalf("judges[0] = %+v, want author %q", judges, wantAuthor)
	}

	roles := make(map[string]string, len(judges))
	for _, j := range judges {
		if _, dup := roles[j.Name]; dup {
			t.Errorf("duplicate judge %q", j.Name)
		}
		roles[j.Name] = j.Role
	}
	if roles["Madsen"] != RoleDissenting {
		t.Errorf("Madsen role = %q, want %q", roles["Madsen"], RoleDissenting)
	}
}

func TestExtractJudgesProTemQualifier(t *testing.T) {
	header := "COURT OF APPEALS\n\nFEARING, J.— Opinion text.\n"
	text := header + "\nFearing, J. P. T.\n"
	judges := extractJudges(text, header)

	if len(judges) != 1 {
		t.Fatalf("got %d judges, want 1: %+v", len(judges), judges)
	}
	if judges[0].Role != RoleAuthor+"_"+RoleProTempore {
		t.Errorf("role = %q, want %q", judges[0].Role, RoleAuthor+"_"+RoleProTempore)
	}
}

func TestExtractParties(t *testing.T) {
	tests := []struct {
		name       string
		caption    string
		header     string
		wantNames  []string
		wantFirst  constants.LegalRole
		wantSecond constants.LegalRole
	}{
		{
			"appellant default",
			"STATE OF WASHINGTON v. JOHN MAYFIELD",
			"COURT OF APPEALS ... Appellant ...",
			[]string{"STATE OF WASHINGTON", "JOHN MAYFIELD"},
			constants.Appellant, constants.Respondent,
		},
		{
			"petitioner from header",
			"DOE v. UNIVERSITY OF WASHINGTON",
			"SUPREME COURT ... Petitioner ...",
			[]string{"DOE", "UNIVERSITY OF WASHINGTON"},
			constants.Petitioner, constants.Respondent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parties := extractParties(tt.caption, tt.header)
			if len(parties) != 2 {
				t.Fatalf("got %d parties, want 2", len(parties))
			}
			if parties[0].Name != tt.wantNames[0] || parties[1].Name != tt.wantNames[1] {
				t.Errorf("names = %q/%q, want %q/%q", parties[0].Name, parties[1].Name, tt.wantNames[0], tt.wantNames[1])
			}
			if parties[0].LegalRole != tt.wantFirst || parties[1].LegalRole != tt.wantSecond {
				t.Errorf("roles = %q/%q, want %q/%q", parties[0].LegalRole, parties[1].LegalRole, tt.wantFirst, tt.wantSecond)
			}
		})
	}

	t.Run("no versus", func(t *testing.T) {
		parties := extractParties("IN RE THE ESTATE OF SMITH", "")
		if len(parties) != 1 || parties[0].LegalRole != constants.Petitioner {
			t.Errorf("parties = %+v, want single petitioner", parties)
		}
	})

	t.Run("empty caption", func(t *testing.T) {
		if parties := extractParties("", "header"); parties != nil {
			t.Errorf("parties = %+v, want nil", parties)
		}
	})
}

func TestExtractCitations(t *testing.T) {
	text := `See State v. Gresham, 173 Wn.2d 405, 269 P.3d 207 (2012); also
Doe v. Roe, 15 Wn. App. 2d 620; State v. Smith, 100 Wash. 2d 300.
Gresham again: 173 Wn.2d 405.`

	citations := extractCitations(text)
	if len(citations) != 3 {
		t.Fatalf("got %d citations, want 3 (deduped): %+v", len(citations), citations)
	}
	if citations[0].FullCitation != "173 Wn.2d 405" {
		t.Errorf("citation[0] = %q, want %q", citations[0].FullCitation, "173 Wn.2d 405")
	}
	if citations[1].Reporter != ReporterWnApp2d {
		t.Errorf("citation[1].Reporter = %q, want %q", citations[1].Reporter, ReporterWnApp2d)
	}
	if citations[2].Reporter != ReporterWn2d {
		t.Errorf("citation[2].Reporter = %q, want %q", citations[2].Reporter, ReporterWn2d)
	}
}

func TestExtractStatutes(t *testing.T) {
	text := "Under RCW 26.09.060. and RCW 4.22, and again RCW 26.09.060, liability attaches."
	statutes := extractStatutes(text)
	if len(statutes) != 2 {
		t.Fatalf("got %d statutes, want 2: %+v", len(statutes), statutes)
	}
	if statutes[0].RCWNumber != "26.09.060" || statutes[0].FullText != "RCW 26.09.060" {
		t.Errorf("statute[0] = %+v, want trailing dot stripped", statutes[0])
	}
	if statutes[1].RCWNumber != "4.22" {
		t.Errorf("statute[1] = %+v", statutes[1])
	}
}

func TestExtractCounty(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"appeal from superior court", "Appeal from the Spokane County Superior Court, Honorable J. Smith.", "Spokane"},
		{"superior court of", "On review from the Superior Court of King County.", "King"},
		{"two word county", "Appeal from Walla Walla County Superior Court.", "Walla Walla"},
		{"stopword rejected then city fallback", "Officers of the Tacoma Police Department responded.", "Pierce"},
		{"city context", "The incident occurred in Moses Lake on a summer evening.", "Grant"},
		{"nothing", "No geographic signal appears here.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractCounty(tt.text); got != tt.want {
				t.Errorf("extractCounty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCaseType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"state as defendant is civil", "JANE DOE, Appellant, v. STATE OF WASHINGTON, Defendant.", "civil"},
		{"certified question", "Certification from the United States District Court.", "civil"},
		{"negligence is tort", "The complaint alleged negligence in supervision.", "tort"},
		{"state as prosecutor", "STATE OF WASHINGTON, Respondent, v. JOHN MAYFIELD, Appellant.", "criminal"},
		{"felony", "He was charged with a felony under chapter 9A.", "criminal"},
		{"estate", "In the Matter of the Estate of Helen Carter.", "estate"},
		{"marriage dissolution", "In re Marriage of Brown, dissolution proceedings.", "divorce"},
		{"parenting plan", "The court modified the parenting plan.", "family"},
		{"default civil", "A commercial dispute between two corporations.", "civil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractCaseType(tt.text); got != tt.want {
				t.Errorf("extractCaseType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantNil bool
		wantY   int
		wantM   int
		wantD   int
	}{
		{"Jan. 16, 2025", false, 2025, 1, 16},
		{"January 16, 2025", false, 2025, 1, 16},
		{"2025-01-16", false, 2025, 1, 16},
		{"September 3 2024", false, 2024, 9, 3},
		{"not a date", true, 0, 0, 0},
		{"", true, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDate(tt.in)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseDate(%q) = %v, want nil", tt.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil", tt.in)
			}
			if got.Year() != tt.wantY || int(got.Month()) != tt.wantM || got.Day() != tt.wantD {
				t.Errorf("ParseDate(%q) = %v", tt.in, got)
			}
		})
	}
}
