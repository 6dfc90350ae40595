package utils

import "strings"

// jsOnlyDomains lists job boards that render their postings entirely
// client-side. A plain HTTP fetch of these pages returns a shell document,
// so retrying against them is pointless.
var jsOnlyDomains = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"welcometothejungle.com",
}

// RequiresJavaScript reports whether the URL points at a site known to need
// JavaScript rendering. Advisory only: callers may use it to skip scraping
// and ask the user to paste the description instead.
func RequiresJavaScript(url string) bool {
	for _, domain := range jsOnlyDomains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}
