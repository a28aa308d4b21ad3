package models

// LicenceSection describes one section of the Firearms Control Act under
// which a licence can be issued, along with how long such a licence stays
// valid before renewal.
type LicenceSection struct {
	Code          string `json:"code" bson:"code"`
	Name          string `json:"name" bson:"name"`
	ValidityYears int    `json:"validityYears" bson:"validityYears"`
}

// LicenceSections is the fixed catalog of the twelve licence sections the
// tracker understands. Expiry dates are always derived from this table.
var LicenceSections = []LicenceSection{
	{Code: "section13", Name: "Section 13 - Self Defence", ValidityYears: 5},
	{Code: "section14", Name: "Section 14 - Restricted Firearm (Self Defence)", ValidityYears: 2},
	{Code: "section15", Name: "Section 15 - Occasional Hunting & Sport Shooting", ValidityYears: 10},
	{Code: "section16", Name: "Section 16 - Dedicated Hunting & Sport Shooting", ValidityYears: 10},
	{Code: "section16A", Name: "Section 16A - Professional Hunting", ValidityYears: 10},
	{Code: "section17", Name: "Section 17 - Private Collection", ValidityYears: 10},
	{Code: "section18", Name: "Section 18 - Public Collection", ValidityYears: 10},
	{Code: "section20hunting", Name: "Section 20 - Business: Hunting", ValidityYears: 5},
	{Code: "section20security", Name: "Section 20 - Business: Security", ValidityYears: 2},
	{Code: "section20training", Name: "Section 20 - Business: Training", ValidityYears: 5},
	{Code: "section20other", Name: "Section 20 - Business: Other", ValidityYears: 5},
	{Code: "section21", Name: "Section 21 - Temporary Authorisation", ValidityYears: 1},
}

// SectionByCode looks up a licence section from the catalog
func SectionByCode(code string) (LicenceSection, bool) {
	for _, s := range LicenceSections {
		if s.Code == code {
			return s, true
		}
	}
	return LicenceSection{}, false
}
