package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobdeck/internal/analyzer"
	"jobdeck/internal/config"
	"jobdeck/internal/llm"
	"jobdeck/internal/llm/prompts"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

var validate = validator.New()

// AnalyzeHandler runs the full CV-against-posting analysis. The request is
// a multipart form: the CV file plus the job source and provider fields.
func AnalyzeHandler(cfg *config.Config, a *analyzer.Analyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		logger := logging.LogWithRequestID(requestID(c))
		logger.Info("Analyze request received")

		req := models.AnalyzeRequest{
			JobURL:         c.FormValue("jobUrl"),
			JobDescription: c.FormValue("jobDescription"),
			CompanyName:    c.FormValue("companyName"),
			Position:       c.FormValue("position"),
			Provider:       utils.GetStringOrDefault(c.FormValue("provider"), cfg.LLM.DefaultProvider),
			Model:          utils.GetStringOrDefault(c.FormValue("model"), cfg.LLM.DefaultModel),
			APIKey:         c.FormValue("apiKey"),
		}

		fileHeader, err := c.FormFile("cv")
		if err != nil {
			return respondError(c, utils.NewInvalidRequestError("CV file is required"))
		}
		file, err := fileHeader.Open()
		if err != nil {
			return respondError(c, utils.NewDocumentParseError(err.Error()))
		}
		defer file.Close()

		req.CVContent, err = io.ReadAll(file)
		if err != nil {
			return respondError(c, utils.NewDocumentParseError(err.Error()))
		}
		req.CVFilename = fileHeader.Filename

		result, err := a.Analyze(c.Request().Context(), req)
		if err != nil {
			logger.Error("Analysis failed", map[string]interface{}{
				"provider": req.Provider,
				"error":    err.Error(),
			})
			return respondError(c, err)
		}

		logger.Info("Analysis completed", map[string]interface{}{
			"provider":        req.Provider,
			"model":           req.Model,
			"processing_time": utils.FormatDuration(time.Since(start)),
		})

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:           true,
			Analysis:          result.Analysis,
			TailoredCV:        result.TailoredCV,
			CoverLetter:       result.CoverLetter,
			RecruiterMessages: result.RecruiterMessages,
		})
	}
}

// ModelsHandler lists the models available per provider
func ModelsHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.ModelsResponse{
			Success:   true,
			Providers: llmManager.ListModels(c.Request().Context()),
		})
	}
}

// AIStatusHandler reports whether local inference is reachable. The check
// itself always succeeds; availability is carried in the payload.
func AIStatusHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		available, count, err := llmManager.OllamaStatus(c.Request().Context())
		message := "Ollama is running"
		if err != nil {
			message = "Ollama is not reachable"
		}

		return c.JSON(http.StatusOK, models.AIStatusResponse{
			Success:   true,
			Available: available,
			Message:   message,
			Models:    count,
		})
	}
}

// ChatHandler answers a free-form career question through the default
// provider and model.
func ChatHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, utils.NewInvalidRequestError("Invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return respondError(c, utils.NewInvalidRequestError("Message is required"))
		}

		prompt := prompts.ChatPrompt(req.Message, req.Context)
		text, err := llmManager.Call(c.Request().Context(), cfg.LLM.DefaultProvider, cfg.LLM.DefaultModel, prompt, "")
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			Success:  true,
			Response: text,
		})
	}
}
