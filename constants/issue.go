package constants

import "strings"

type IssueCategory string

const (
	CriminalLawProcedure   IssueCategory = "Criminal Law & Procedure"
	ConstitutionalLaw      IssueCategory = "Constitutional Law"
	CivilProcedure         IssueCategory = "Civil Procedure"
	Evidence               IssueCategory = "Evidence"
	Contracts              IssueCategory = "Contracts"
	TortsPersonalInjury    IssueCategory = "Torts / Personal Injury"
	PropertyLaw            IssueCategory = "Property Law"
	EmploymentLaw          IssueCategory = "Employment Law"
	EstateProbate          IssueCategory = "Estate & Probate"
	AdministrativeLaw      IssueCategory = "Administrative Law"
	BusinessCommercial     IssueCategory = "Business & Commercial"
	InsuranceLaw           IssueCategory = "Insurance Law"
	FamilyLaw              IssueCategory = "Family Law"
	SpousalSupport         IssueCategory = "Spousal Support / Maintenance"
	ChildSupport           IssueCategory = "Child Support"
	ParentingPlanCustody   IssueCategory = "Parenting Plan / Custody / Visitation"
	PropertyDivision       IssueCategory = "Property Division / Debt Allocation"
	AttorneyFeesCosts      IssueCategory = "Attorney Fees & Costs"
	ProceduralEvidentiary  IssueCategory = "Procedural & Evidentiary Issues"
	JurisdictionVenue      IssueCategory = "Jurisdiction & Venue"
	EnforcementContempt    IssueCategory = "Enforcement & Contempt Orders"
	ModificationOrders     IssueCategory = "Modification Orders"
	Miscellaneous          IssueCategory = "Miscellaneous / Unclassified"
)

// issueCategorySynonyms maps lowercased free-text variants onto the closed
// IssueCategory set. Lookup is exact first, then substring in either
// direction.
var issueCategorySynonyms = map[string]IssueCategory{
	"criminal law & procedure": CriminalLawProcedure,
	"criminal law":             CriminalLawProcedure,
	"criminal":                 CriminalLawProcedure,
	"criminal procedure":       CriminalLawProcedure,
	"search & seizure":         CriminalLawProcedure,
	"fourth amendment":         CriminalLawProcedure,
	"sentencing":               CriminalLawProcedure,
	"firearm possession":       CriminalLawProcedure,
	"unlawful possession":      CriminalLawProcedure,

	"constitutional law": ConstitutionalLaw,
	"constitutional":     ConstitutionalLaw,
	"due process":        ConstitutionalLaw,
	"equal protection":   ConstitutionalLaw,
	"first amendment":    ConstitutionalLaw,
	"civil rights":       ConstitutionalLaw,

	"civil procedure":        CivilProcedure,
	"summary judgment":       CivilProcedure,
	"motion to dismiss":      CivilProcedure,
	"statute of limitations": CivilProcedure,
	"standing":               CivilProcedure,

	"evidence":                Evidence,
	"hearsay":                 Evidence,
	"expert testimony":        Evidence,
	"sufficiency of evidence": Evidence,
	"insufficient evidence":   Evidence,

	"contracts":          Contracts,
	"contract":           Contracts,
	"breach of contract": Contracts,

	"torts / personal injury": TortsPersonalInjury,
	"torts":                   TortsPersonalInjury,
	"tort":                    TortsPersonalInjury,
	"personal injury":         TortsPersonalInjury,
	"negligence":              TortsPersonalInjury,
	"civil liability":         TortsPersonalInjury,
	"title ix":                TortsPersonalInjury,

	"property law":  PropertyLaw,
	"property":      PropertyLaw,
	"real property": PropertyLaw,

	"employment law": EmploymentLaw,
	"employment":     EmploymentLaw,
	"labor":          EmploymentLaw,
	"workplace":      EmploymentLaw,

	"estate & probate":     EstateProbate,
	"estate":               EstateProbate,
	"probate":              EstateProbate,
	"trust":                EstateProbate,
	"trust administration": EstateProbate,
	"will contest":         EstateProbate,
	"inheritance":          EstateProbate,

	"administrative law": AdministrativeLaw,
	"administrative":     AdministrativeLaw,
	"agency":             AdministrativeLaw,

	"business & commercial": BusinessCommercial,
	"business":              BusinessCommercial,
	"commercial":            BusinessCommercial,

	"insurance law": InsuranceLaw,
	"insurance":     InsuranceLaw,

	"family law":                    FamilyLaw,
	"spousal support / maintenance": SpousalSupport,
	"spousal support":               SpousalSupport,
	"maintenance":                   SpousalSupport,
	"alimony":                       SpousalSupport,

	"child support": ChildSupport,

	"parenting plan / custody / visitation": ParentingPlanCustody,
	"parenting plan":                        ParentingPlanCustody,
	"custody":                               ParentingPlanCustody,
	"visitation":                            ParentingPlanCustody,
	"child custody":                         ParentingPlanCustody,

	"property division / debt allocation": PropertyDivision,
	"property division":                   PropertyDivision,
	"debt allocation":                     PropertyDivision,
	"asset division":                      PropertyDivision,

	"attorney fees & costs": AttorneyFeesCosts,
	"attorney fees":         AttorneyFeesCosts,
	"legal fees":            AttorneyFeesCosts,

	"procedural & evidentiary issues": ProceduralEvidentiary,
	"procedural":                      ProceduralEvidentiary,
	"evidentiary":                     ProceduralEvidentiary,

	"jurisdiction & venue": JurisdictionVenue,
	"jurisdiction":         JurisdictionVenue,
	"venue":                JurisdictionVenue,

	"enforcement & contempt orders": EnforcementContempt,
	"enforcement":                   EnforcementContempt,
	"contempt":                      EnforcementContempt,

	"modification orders": ModificationOrders,
	"modification":        ModificationOrders,

	"miscellaneous / unclassified": Miscellaneous,
	"miscellaneous":                Miscellaneous,
	"other":                        Miscellaneous,
	"unknown":                      Miscellaneous,
	"general":                      Miscellaneous,
}

// CanonicalizeIssueCategory maps a free-text issue category onto the closed
// IssueCategory set: exact synonym match first, then substring containment in
// either direction, then Miscellaneous.
func CanonicalizeIssueCategory(input string) (IssueCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Miscellaneous, false
	}

	if cat, ok := issueCategorySynonyms[normalized]; ok {
		return cat, true
	}

	for key, cat := range issueCategorySynonyms {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return cat, true
		}
	}

	return Miscellaneous, false
}
