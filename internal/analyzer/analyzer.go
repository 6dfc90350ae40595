// Package analyzer orchestrates one full CV-against-posting analysis:
// resolve the job description, extract the CV text, then generate the
// analysis, tailored CV, cover letter and recruiter messages through the
// LLM dispatcher.
package analyzer

import (
	"context"
	"strings"

	"jobdeck/internal/config"
	"jobdeck/internal/llm"
	"jobdeck/internal/llm/prompts"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// Dispatcher routes a generic LLM call to a provider adapter
type Dispatcher interface {
	Call(ctx context.Context, providerID, model, prompt, apiKey string) (string, error)
}

// Scraper fetches job description text from a posting URL
type Scraper interface {
	Scrape(ctx context.Context, rawURL string, maxLength int) (string, error)
}

// CVExtractor converts an uploaded CV file to plain text
type CVExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

// Analyzer runs the four-document generation pipeline
type Analyzer struct {
	cfg        *config.Config
	registry   *llm.Registry
	dispatcher Dispatcher
	scraper    Scraper
	extractor  CVExtractor
	logger     logging.Logger
}

// New creates an analyzer wired to the given collaborators
func New(cfg *config.Config, registry *llm.Registry, dispatcher Dispatcher, scraper Scraper, extractor CVExtractor) *Analyzer {
	return &Analyzer{
		cfg:        cfg,
		registry:   registry,
		dispatcher: dispatcher,
		scraper:    scraper,
		extractor:  extractor,
		logger:     logging.GetGlobalLogger(),
	}
}

// Analyze validates the request, resolves the job description and CV text,
// and runs the four generation calls in sequence. All-or-nothing: any
// failed step aborts the run and no partial result is ever returned.
func (a *Analyzer) Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalysisResult, error) {
	if len(req.CVContent) == 0 {
		return nil, utils.NewInvalidRequestError("CV file is required")
	}
	if req.JobURL == "" && strings.TrimSpace(req.JobDescription) == "" {
		return nil, utils.NewInvalidRequestError("Job URL or job description is required")
	}

	descriptor, err := a.registry.Resolve(req.Provider)
	if err != nil {
		return nil, err
	}
	if descriptor.RequiresAPIKey && req.APIKey == "" {
		return nil, utils.NewProviderAuthError(descriptor.Name)
	}

	cvText, err := a.extractor.ExtractText(req.CVContent, req.CVFilename)
	if err != nil {
		return nil, err
	}

	description, err := a.resolveDescription(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(description)) < a.cfg.Scraper.MinContentLength {
		return nil, utils.NewDescriptionTooShortError()
	}

	a.logger.Info("Starting analysis pipeline", map[string]interface{}{
		"provider":    req.Provider,
		"model":       req.Model,
		"cv_length":   len(cvText),
		"desc_length": len(description),
	})

	result := &models.AnalysisResult{}

	if result.Analysis, err = a.call(ctx, req, prompts.AnalysisPrompt(cvText, description)); err != nil {
		return nil, err
	}
	if result.TailoredCV, err = a.call(ctx, req, prompts.TailoredCVPrompt(cvText, description)); err != nil {
		return nil, err
	}
	if result.CoverLetter, err = a.call(ctx, req, prompts.CoverLetterPrompt(cvText, description, req.CompanyName, req.Position)); err != nil {
		return nil, err
	}
	if result.RecruiterMessages, err = a.call(ctx, req, prompts.RecruiterMessagesPrompt(cvText, req.CompanyName, req.Position)); err != nil {
		return nil, err
	}

	return result, nil
}

func (a *Analyzer) call(ctx context.Context, req models.AnalyzeRequest, prompt string) (string, error) {
	return a.dispatcher.Call(ctx, req.Provider, req.Model, prompt, req.APIKey)
}

// resolveDescription prefers pasted text over the URL. URLs on sites known
// to render postings client-side are rejected without a fetch attempt.
func (a *Analyzer) resolveDescription(ctx context.Context, req models.AnalyzeRequest) (string, error) {
	if strings.TrimSpace(req.JobDescription) != "" {
		return req.JobDescription, nil
	}

	if utils.RequiresJavaScript(req.JobURL) {
		return "", utils.NewScrapeFailedError("this site renders job postings with JavaScript and cannot be fetched directly")
	}

	return a.scraper.Scrape(ctx, req.JobURL, a.cfg.Scraper.MaxContentLength)
}
