package models

import "time"

// AnalysisResult holds the four generated documents for one analysis. All
// four fields are populated together; a partially filled result is never
// returned to a caller.
type AnalysisResult struct {
	Analysis          string `json:"analysis"`
	TailoredCV        string `json:"tailoredCV"`
	CoverLetter       string `json:"coverLetter"`
	RecruiterMessages string `json:"recruiterMessages"`
}

// AnalyzeResponse represents the response from an analyze request
type AnalyzeResponse struct {
	Success           bool   `json:"success"`
	Analysis          string `json:"analysis"`
	TailoredCV        string `json:"tailoredCV"`
	CoverLetter       string `json:"coverLetter"`
	RecruiterMessages string `json:"recruiterMessages"`
}

// ModelsResponse lists the models available per provider
type ModelsResponse struct {
	Success   bool                `json:"success"`
	Providers map[string][]string `json:"providers"`
}

// AIStatusResponse reflects the reachability of the local inference service
type AIStatusResponse struct {
	Success   bool   `json:"success"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Models    int    `json:"models,omitempty"`
}

// ChatResponse represents the response from a chat request
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// ApplicationListResponse wraps the full list of tracked applications
type ApplicationListResponse struct {
	Success      bool          `json:"success"`
	Applications []Application `json:"applications"`
}

// ApplicationResponse wraps a single application record mutation
type ApplicationResponse struct {
	Success     bool         `json:"success"`
	Application *Application `json:"application,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
