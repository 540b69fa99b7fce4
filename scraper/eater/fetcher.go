package eater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"eater-scraper/utils"
)

// Fetcher retrieves one page body over plain HTTP. Eater pages are
// server-rendered, so there is no browser in the loop — a GET with a
// believable header set is enough.
type Fetcher struct {
	client *http.Client
	policy *utils.RetryPolicy
}

func NewFetcher(timeout time.Duration, policy *utils.RetryPolicy) *Fetcher {
	if policy == nil {
		policy = utils.DefaultRetryPolicy()
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		policy: policy,
	}
}

// Fetch GETs the URL with retries. Network errors and non-2xx statuses
// both count as transient; after the policy is exhausted the last error
// is returned and the URL is fatal for its unit of work.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	var body string

	err := f.policy.Do(func() error {
		b, err := f.doGET(ctx, pageURL)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	return body, nil
}

func (f *Fetcher) doGET(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header = utils.BrowserHeaders()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
