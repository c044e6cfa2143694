package entity

// OpinionMetadata is one row of the courts' published-opinions CSV. Fields
// are kept as strings at ingest; canonicalization happens in reconcile.
type OpinionMetadata struct {
	OpinionType       string
	PublicationStatus string
	Month             string
	CaseNumber        string
	Division          string
	CaseTitle         string
	FileContains      string
	CaseInfoURL       string
	PDFURL            string
	PDFFilename       string
	Year              int
	FileDate          string
}
