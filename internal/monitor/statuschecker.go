package monitor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"jobmate/monitor-service/internal/model"
)

// StatusChecker decides whether a posting is still accepting applications.
// The HTTP implementation is the production one; tests inject fakes.
type StatusChecker interface {
	Check(ctx context.Context, job model.JobRecord) (model.JobStatus, error)
}

// closedMarkers are phrases job boards render once a posting is taken
// down. Matched case-insensitively against the page's visible text.
var closedMarkers = []string{
	"no longer accepting applications",
	"this job has expired",
	"this position has been filled",
	"job is no longer available",
	"posting has been removed",
	"vacancy is closed",
}

// HTTPStatusChecker fetches the posting page and looks for closed
// markers. A circuit breaker shields the run from a job board that starts
// failing wholesale; transient transport errors get one retry.
type HTTPStatusChecker struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     zerolog.Logger
}

// NewHTTPStatusChecker returns a checker with the given per-request
// timeout.
func NewHTTPStatusChecker(timeout time.Duration, log zerolog.Logger) *HTTPStatusChecker {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "posting-status",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 10 && counts.TotalFailures*2 > counts.Requests
		},
	})
	return &HTTPStatusChecker{
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		log:     log.With().Str("component", "status-checker").Logger(),
	}
}

// Check reports the posting's current status. Jobs without a source URL
// cannot be checked and are reported unchanged.
func (c *HTTPStatusChecker) Check(ctx context.Context, job model.JobRecord) (model.JobStatus, error) {
	if job.SourceURL == "" {
		return job.Status, nil
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchStatus(ctx, job.SourceURL)
	})
	if err != nil {
		return job.Status, fmt.Errorf("check %s: %w", job.SourceURL, err)
	}
	return result.(model.JobStatus), nil
}

func (c *HTTPStatusChecker) fetchStatus(ctx context.Context, sourceURL string) (model.JobStatus, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			c.log.Debug().Str("url", sourceURL).Msg("retrying status check")
		}
		status, retryable, err := c.fetchOnce(ctx, sourceURL)
		if err == nil {
			return status, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			break
		}
	}
	return model.StatusOpen, lastErr
}

func (c *HTTPStatusChecker) fetchOnce(ctx context.Context, sourceURL string) (status model.JobStatus, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return model.StatusOpen, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return model.StatusOpen, true, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// The posting page itself disappeared.
		return model.StatusClosed, false, nil
	case resp.StatusCode >= 500:
		return model.StatusOpen, true, fmt.Errorf("job board returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return model.StatusOpen, false, fmt.Errorf("job board returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return model.StatusOpen, false, fmt.Errorf("parse page: %w", err)
	}

	pageText := strings.ToLower(doc.Find("body").Text())
	for _, marker := range closedMarkers {
		if strings.Contains(pageText, marker) {
			return model.StatusClosed, false, nil
		}
	}
	return model.StatusOpen, false, nil
}
