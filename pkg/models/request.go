package models

// AnalyzeRequest carries one CV-against-job analysis request through the
// orchestrator. The CV arrives as raw file bytes from the multipart form and
// is parsed to text downstream.
type AnalyzeRequest struct {
	CVContent      []byte `json:"-"`
	CVFilename     string `json:"cv_filename,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	JobDescription string `json:"job_description,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Position       string `json:"position,omitempty"`
	Provider       string `json:"provider" validate:"required"`
	Model          string `json:"model" validate:"required"`
	APIKey         string `json:"-"`
}

// ChatRequest represents the request payload for the career-advisor chat
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context,omitempty"`
}

// DocumentRequest represents the request payload for PDF generation
// (tailored CV, cover letter, or the combined package)
type DocumentRequest struct {
	TailoredCV  string `json:"tailoredCV,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Position    string `json:"position,omitempty"`
}

// ApplicationRequest represents the create/update payload for a tracked
// job application
type ApplicationRequest struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Location    string `json:"location,omitempty"`
	DateApplied string `json:"dateApplied,omitempty"`
	Status      string `json:"status,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Contact     string `json:"contact,omitempty"`
	JobURL      string `json:"jobUrl,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
