// Package scraper acquires job description text from arbitrary posting
// URLs: plain HTTP fetch, boilerplate stripping, prioritized content
// extraction, and linear-backoff retries around the whole attempt.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
	"jobdeck/internal/retry"
	"jobdeck/pkg/utils"
)

// Scraper fetches and extracts job posting text
type Scraper struct {
	cfg     *config.Config
	client  *http.Client
	backoff retry.DelayFunc
	logger  logging.Logger
}

// New creates a scraper from configuration
func New(cfg *config.Config) *Scraper {
	client := &http.Client{
		Timeout: cfg.Scraper.RequestTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.Scraper.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", cfg.Scraper.MaxRedirects)
			}
			return nil
		},
	}

	return &Scraper{
		cfg:     cfg,
		client:  client,
		backoff: retry.Linear(cfg.Scraper.RetryDelay),
		logger:  logging.GetGlobalLogger(),
	}
}

// attemptError is a failed fetch/extract attempt, keeping the HTTP status
// (if one was received) for the final error message.
type attemptError struct {
	status int
	msg    string
}

func (e *attemptError) Error() string {
	if e.status != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.status, e.msg)
	}
	return e.msg
}

// Scrape fetches the page at rawURL and returns the extracted job
// description text, truncated to maxLength characters. It retries transient
// failures with linear backoff and fails fast on a malformed URL without
// touching the network.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = s.cfg.Scraper.MaxContentLength
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", utils.NewInvalidURLError(rawURL)
	}

	var text string
	retryErr := retry.Do(ctx, s.cfg.Scraper.MaxRetries, s.backoff, func(ctx context.Context, attempt int) error {
		s.logger.Info("Scrape attempt", map[string]interface{}{
			"attempt":     attempt,
			"max_retries": s.cfg.Scraper.MaxRetries,
			"url":         rawURL,
		})

		extracted, err := s.attempt(ctx, rawURL)
		if err != nil {
			s.logger.Warn("Scrape attempt failed", map[string]interface{}{
				"attempt": attempt,
				"url":     rawURL,
				"error":   err.Error(),
			})
			return err
		}

		text = extracted
		return nil
	})

	if retryErr != nil {
		return "", utils.NewScrapeFailedError(retryErr.Error())
	}

	final := utils.Truncate(text, maxLength)
	s.logger.Info("Scrape succeeded", map[string]interface{}{
		"url":            rawURL,
		"content_length": len(final),
	})
	return final, nil
}

// attempt performs one fetch-and-extract round trip
func (s *Scraper) attempt(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &attemptError{msg: err.Error()}
	}

	// A realistic browser profile; several job boards reject default Go
	// client headers outright.
	req.Header.Set("User-Agent", s.cfg.Scraper.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &attemptError{msg: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &attemptError{status: resp.StatusCode, msg: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &attemptError{status: resp.StatusCode, msg: "unexpected status"}
	}

	text, err := extractText(string(body), s.cfg.Scraper.MinSelectorText)
	if err != nil {
		return "", &attemptError{status: resp.StatusCode, msg: fmt.Sprintf("parse HTML: %v", err)}
	}

	if len(text) < s.cfg.Scraper.MinContentLength {
		return "", &attemptError{status: resp.StatusCode, msg: "content too short, scraping likely failed"}
	}

	return text, nil
}
