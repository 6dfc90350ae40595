package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdeck/internal/config"
	"jobdeck/internal/retry"
	"jobdeck/pkg/utils"
)

func testScraper(t *testing.T) *Scraper {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	s := New(cfg)
	s.backoff = retry.Linear(time.Millisecond)
	return s
}

func TestScrape_ExtractsJobDescriptionSelector(t *testing.T) {
	posting := strings.Repeat("Senior Go engineer building distributed systems. ", 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body>
			<nav>Home Jobs About</nav>
			<div class="job-description">` + posting + `</div>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, err := testScraper(t).Scrape(context.Background(), server.URL, 8000)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go engineer")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home Jobs About")
}

func TestScrape_Idempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><article>` + strings.Repeat("Backend role with Go and Postgres. ", 10) + `</article></body></html>`))
	}))
	defer server.Close()

	s := testScraper(t)
	first, err := s.Scrape(context.Background(), server.URL, 8000)
	require.NoError(t, err)
	second, err := s.Scrape(context.Background(), server.URL, 8000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScrape_FallsBackToBodyWhenNoSelectorMatches(t *testing.T) {
	body := strings.Repeat("plain text posting without any containers ", 5)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>" + body + "</p></body></html>"))
	}))
	defer server.Close()

	text, err := testScraper(t).Scrape(context.Background(), server.URL, 8000)
	require.NoError(t, err)
	assert.Contains(t, text, "plain text posting")
}

func TestScrape_FallsBackToBodyWhenSelectorTextTooShort(t *testing.T) {
	body := strings.Repeat("the real description lives outside the container ", 5)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><div class="job-description">tiny</div><p>` + body + `</p></body></html>`))
	}))
	defer server.Close()

	text, err := testScraper(t).Scrape(context.Background(), server.URL, 8000)
	require.NoError(t, err)
	assert.Contains(t, text, "the real description")
}

func TestScrape_TruncatesToMaxLength(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><main>" + strings.Repeat("long posting text ", 100) + "</main></body></html>"))
	}))
	defer server.Close()

	text, err := testScraper(t).Scrape(context.Background(), server.URL, 200)
	require.NoError(t, err)
	assert.Len(t, text, 200)
}

func TestScrape_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("<html><body><main>" + strings.Repeat("recovered posting ", 10) + "</main></body></html>"))
	}))
	defer server.Close()

	text, err := testScraper(t).Scrape(context.Background(), server.URL, 8000)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, text, "recovered posting")
}

func TestScrape_ShortContentFailsAfterAllAttempts(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte("<html><body>too short</body></html>"))
	}))
	defer server.Close()

	_, err := testScraper(t).Scrape(context.Background(), server.URL, 8000)
	require.Error(t, err)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, utils.KindScrapeFailed, cerr.Kind)
	assert.Equal(t, 3, calls)
}

func TestScrape_ErrorCarriesLastHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testScraper(t).Scrape(context.Background(), server.URL, 8000)
	require.Error(t, err)

	cerr, ok := utils.AsCustomError(err)
	require.True(t, ok)
	assert.Contains(t, cerr.Detail, "HTTP 403")
}

func TestScrape_InvalidURLFailsWithoutNetworkCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer server.Close()

	for _, bad := range []string{"not a url", "ftp://example.com/job", "/relative/path", ""} {
		_, err := testScraper(t).Scrape(context.Background(), bad, 8000)
		require.Error(t, err, "url %q", bad)

		cerr, ok := utils.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, utils.KindInvalidURL, cerr.Kind)
	}
	assert.Equal(t, 0, calls)
}

func TestExtractText_NormalizesWhitespace(t *testing.T) {
	html := "<html><body><main>lots    of\n\n\n   spacing \t here" + strings.Repeat(" filler", 20) + "</main></body></html>"
	text, err := extractText(html, 100)
	require.NoError(t, err)
	assert.Contains(t, text, "lots of spacing here")
}

func TestExtractText_SelectorPriorityOrder(t *testing.T) {
	html := `<html><body>
		<article>` + strings.Repeat("generic article text ", 10) + `</article>
		<div class="job-description">` + strings.Repeat("specific posting text ", 10) + `</div>
	</body></html>`

	text, err := extractText(html, 100)
	require.NoError(t, err)
	assert.Contains(t, text, "specific posting text")
	assert.NotContains(t, text, "generic article text")
}
