package grammar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type httpChecker struct {
	endpoint string
	language string
	ignored  map[string]bool
	client   *http.Client
}

// NewHTTPChecker returns a Checker for a LanguageTool server at baseURL,
// e.g. http://localhost:8081.
func NewHTTPChecker(baseURL, language string, ignoredRules []string, timeout time.Duration) Checker {
	return &httpChecker{
		endpoint: strings.TrimRight(baseURL, "/") + "/v2/check",
		language: language,
		ignored:  ruleSet(ignoredRules),
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *httpChecker) Check(ctx context.Context, text string) ([]Issue, error) {
	form := url.Values{}
	form.Set("language", c.language)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("languagetool request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read languagetool response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("languagetool http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return decodeIssues(body, c.ignored)
}
