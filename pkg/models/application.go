package models

// Application is one tracked job application, persisted as a row of the
// Applications spreadsheet. Field order matches the sheet's column order.
type Application struct {
	ID          int64  `json:"ID"`
	Company     string `json:"Company"`
	Position    string `json:"Position"`
	Location    string `json:"Location"`
	DateApplied string `json:"Date Applied"`
	Status      string `json:"Status"`
	Salary      string `json:"Salary Range"`
	Contact     string `json:"Contact Person"`
	JobURL      string `json:"Job URL"`
	Notes       string `json:"Notes"`
}
