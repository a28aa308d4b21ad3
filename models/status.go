package models

// Status holds the result of a single SAPS enquiry lookup. It is never
// persisted; it exists only while the lookup result is displayed.
type Status struct {
	ApplicationType    string `json:"applicationType"`
	ApplicationNumber  string `json:"applicationNumber"`
	Calibre            string `json:"calibre"`
	Make               string `json:"make"`
	StatusDescription  string `json:"status"`
	Description        string `json:"description"`
	NextStep           string `json:"nextStep"`
	WorkingDaysPending int    `json:"workingDaysPending"`
	IsOverdue          bool   `json:"isOverdue"`
}
