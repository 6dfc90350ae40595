package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tags that never carry posting text
var removeTags = []string{
	"script", "style", "nav", "header", "footer", "aside",
	"noscript", "iframe", "svg",
}

// Ad and consent containers commonly injected around content
var removeContainers = []string{
	".advertisement", ".ads", ".cookie-banner", "#cookie-notice",
}

// contentSelectors is the prioritized list of containers likely to hold the
// job description. Posting-specific selectors come first, generic content
// containers last; the first selector with any match wins.
var contentSelectors = []string{
	".job-description",
	"#job-description",
	`[data-testid="job-description"]`,
	".description",
	"article",
	"main",
	`[role="main"]`,
}

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	blankLineRegex  = regexp.MustCompile(`\n\s*\n`)
)

// extractText pulls the most relevant text block out of a job posting page.
// When no selector matches, or the matched block is under minSelectorText
// characters, the whole body text is used instead: a short match usually
// means the wrong container, not a short posting.
func extractText(html string, minSelectorText int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, tag := range removeTags {
		doc.Find(tag).Remove()
	}
	for _, container := range removeContainers {
		doc.Find(container).Remove()
	}

	var text string
	for _, selector := range contentSelectors {
		if content := doc.Find(selector).First(); content.Length() > 0 {
			text = content.Text()
			break
		}
	}

	if len(strings.TrimSpace(text)) < minSelectorText {
		text = doc.Find("body").Text()
	}

	return normalizeWhitespace(text), nil
}

// normalizeWhitespace collapses whitespace runs and blank lines
func normalizeWhitespace(text string) string {
	text = whitespaceRegex.ReplaceAllString(text, " ")
	text = blankLineRegex.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
