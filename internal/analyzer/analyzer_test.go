package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/internal/config"
	"jobdeck/internal/llm"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

type mockDispatcher struct {
	calls   []string
	failOn  int
	failErr error
}

func (m *mockDispatcher) Call(_ context.Context, _, _, prompt, _ string) (string, error) {
	m.calls = append(m.calls, prompt)
	if m.failOn > 0 && len(m.calls) == m.failOn {
		return "", m.failErr
	}
	return "generated text", nil
}

type mockScraper struct {
	calls int
	text  string
	err   error
}

func (m *mockScraper) Scrape(_ context.Context, _ string, _ int) (string, error) {
	m.calls++
	return m.text, m.err
}

type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) ExtractText(_ []byte, _ string) (string, error) {
	return m.text, m.err
}

func testAnalyzer(t *testing.T, d *mockDispatcher, s *mockScraper, e *mockExtractor) *Analyzer {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return New(cfg, llm.NewRegistry(cfg), d, s, e)
}

func validRequest() models.AnalyzeRequest {
	return models.AnalyzeRequest{
		CVContent:      []byte("cv bytes"),
		CVFilename:     "cv.pdf",
		JobDescription: strings.Repeat("Go engineer building backend services. ", 2),
		CompanyName:    "Acme Corp",
		Position:       "Backend Engineer",
		Provider:       models.ProviderOllama,
		Model:          "llama3.2:3b",
	}
}

func TestAnalyze_GeneratesAllFourDocuments(t *testing.T) {
	dispatcher := &mockDispatcher{}
	scraper := &mockScraper{}
	a := testAnalyzer(t, dispatcher, scraper, &mockExtractor{text: "ten years of Go experience"})

	req := validRequest()
	result, err := a.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "generated text", result.Analysis)
	assert.Equal(t, "generated text", result.TailoredCV)
	assert.Equal(t, "generated text", result.CoverLetter)
	assert.Equal(t, "generated text", result.RecruiterMessages)

	require.Len(t, dispatcher.calls, 4)
	for _, prompt := range dispatcher.calls[:3] {
		assert.Contains(t, prompt, "Go engineer building backend services")
	}
	assert.Equal(t, 0, scraper.calls, "pasted description must win over the URL")
}

func TestAnalyze_FailedStepReturnsNoPartialResult(t *testing.T) {
	dispatcher := &mockDispatcher{failOn: 3, failErr: utils.NewProviderError("OpenAI", "boom")}
	a := testAnalyzer(t, dispatcher, &mockScraper{}, &mockExtractor{text: "cv text"})

	result, err := a.Analyze(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Len(t, dispatcher.calls, 3)
}

func TestAnalyze_MissingCVRejected(t *testing.T) {
	dispatcher := &mockDispatcher{}
	a := testAnalyzer(t, dispatcher, &mockScraper{}, &mockExtractor{})

	req := validRequest()
	req.CVContent = nil
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindInvalidRequest, cerr.Kind)
	assert.Empty(t, dispatcher.calls)
}

func TestAnalyze_MissingJobSourceRejected(t *testing.T) {
	a := testAnalyzer(t, &mockDispatcher{}, &mockScraper{}, &mockExtractor{})

	req := validRequest()
	req.JobDescription = "   "
	req.JobURL = ""
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindInvalidRequest, cerr.Kind)
}

func TestAnalyze_UnknownProviderRejectedBeforeExtraction(t *testing.T) {
	dispatcher := &mockDispatcher{}
	extractor := &mockExtractor{err: errors.New("extractor must not run")}
	a := testAnalyzer(t, dispatcher, &mockScraper{}, extractor)

	req := validRequest()
	req.Provider = "mistral"
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindUnsupportedProvider, cerr.Kind)
	assert.Empty(t, dispatcher.calls)
}

func TestAnalyze_RemoteProviderWithoutKeyRejected(t *testing.T) {
	dispatcher := &mockDispatcher{}
	a := testAnalyzer(t, dispatcher, &mockScraper{}, &mockExtractor{text: "cv text"})

	req := validRequest()
	req.Provider = models.ProviderOpenAI
	req.Model = "gpt-4o-mini"
	req.APIKey = ""
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindProviderAuth, cerr.Kind)
	assert.Empty(t, dispatcher.calls)
}

func TestAnalyze_DocumentParseErrorPropagates(t *testing.T) {
	extractor := &mockExtractor{err: utils.NewDocumentParseError("corrupt file")}
	a := testAnalyzer(t, &mockDispatcher{}, &mockScraper{}, extractor)

	_, err := a.Analyze(context.Background(), validRequest())

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindDocumentParse, cerr.Kind)
}

func TestAnalyze_ScrapesWhenOnlyURLGiven(t *testing.T) {
	dispatcher := &mockDispatcher{}
	scraper := &mockScraper{text: strings.Repeat("scraped posting text ", 5)}
	a := testAnalyzer(t, dispatcher, scraper, &mockExtractor{text: "cv text"})

	req := validRequest()
	req.JobDescription = ""
	req.JobURL = "https://example.com/jobs/42"
	result, err := a.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, scraper.calls)
	assert.NotNil(t, result)
	require.Len(t, dispatcher.calls, 4)
	assert.Contains(t, dispatcher.calls[0], "scraped posting text")
}

func TestAnalyze_ShortScrapedDescriptionRejected(t *testing.T) {
	dispatcher := &mockDispatcher{}
	scraper := &mockScraper{text: "too short to analyze"}
	a := testAnalyzer(t, dispatcher, scraper, &mockExtractor{text: "cv text"})

	req := validRequest()
	req.JobDescription = ""
	req.JobURL = "https://example.com/jobs/42"
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindDescriptionTooShort, cerr.Kind)
	assert.Empty(t, dispatcher.calls)
}

func TestAnalyze_JavaScriptOnlySiteSkipsScrape(t *testing.T) {
	scraper := &mockScraper{text: strings.Repeat("should never be fetched ", 5)}
	a := testAnalyzer(t, &mockDispatcher{}, scraper, &mockExtractor{text: "cv text"})

	req := validRequest()
	req.JobDescription = ""
	req.JobURL = "https://www.linkedin.com/jobs/view/12345"
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindScrapeFailed, cerr.Kind)
	assert.NotEmpty(t, cerr.Suggestion)
	assert.Equal(t, 0, scraper.calls)
}

func TestAnalyze_ScrapeFailurePropagates(t *testing.T) {
	scraper := &mockScraper{err: utils.NewScrapeFailedError("HTTP 403: unexpected status")}
	a := testAnalyzer(t, &mockDispatcher{}, scraper, &mockExtractor{text: "cv text"})

	req := validRequest()
	req.JobDescription = ""
	req.JobURL = "https://example.com/jobs/42"
	_, err := a.Analyze(context.Background(), req)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindScrapeFailed, cerr.Kind)
}
