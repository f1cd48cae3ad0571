package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mertkaradayi/gradecore/internal/config"
)

// ErrNotFound is returned when a collaborator answers 404 for a resource.
var ErrNotFound = errors.New("collaborator resource not found")

// ErrUnavailable is returned when a collaborator cannot be reached or keeps
// failing after retries. Callers treat it as batch-fatal.
var ErrUnavailable = errors.New("collaborator unreachable")

// Clients holds one typed client per collaborator service. This struct is
// injected into the import flow, mirroring how the rest of the app wires
// repositories.
type Clients struct {
	Academic   *AcademicClient
	Evaluation *EvaluationClient
	Identity   *IdentityClient
}

// NewClients initializes all collaborator clients from configuration.
func NewClients(cfg *config.Config, lgr zerolog.Logger) *Clients {
	timeout := cfg.CollaboratorTimeout()
	retries := cfg.Collaborators.Retries
	if retries < 1 {
		retries = 1
	}

	httpClient := &http.Client{Timeout: timeout}

	return &Clients{
		Academic:   &AcademicClient{client: newBaseClient(cfg.Collaborators.AcademicURL, httpClient, retries, lgr)},
		Evaluation: &EvaluationClient{client: newBaseClient(cfg.Collaborators.EvaluationURL, httpClient, retries, lgr)},
		Identity:   &IdentityClient{client: newBaseClient(cfg.Collaborators.IdentityURL, httpClient, retries, lgr)},
	}
}

// baseClient performs JSON GETs against one collaborator with retry and
// doubling backoff. All collaborator calls are idempotent reads, so
// retrying is always safe.
type baseClient struct {
	baseURL string
	http    *http.Client
	retries int
	logger  zerolog.Logger
}

func newBaseClient(baseURL string, httpClient *http.Client, retries int, lgr zerolog.Logger) *baseClient {
	return &baseClient{
		baseURL: baseURL,
		http:    httpClient,
		retries: retries,
		logger:  lgr,
	}
}

// getJSON fetches path and decodes the body into out. A 404 maps to
// ErrNotFound without retrying; transport errors and 5xx responses retry
// with doubling backoff and end in ErrUnavailable.
func (c *baseClient) getJSON(ctx context.Context, path string, out interface{}) error {
	url := c.baseURL + path
	backoff := 100 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to build request for %s: %w", url, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn().Err(err).Str("url", url).Int("attempt", attempt).Msg("Collaborator call failed")
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound
		case resp.StatusCode >= 500:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, body)
			c.logger.Warn().Str("url", url).Int("status", resp.StatusCode).Int("attempt", attempt).Msg("Collaborator returned server error")
			continue
		case resp.StatusCode != http.StatusOK:
			resp.Body.Close()
			return fmt.Errorf("%w: unexpected status %d from %s", ErrUnavailable, resp.StatusCode, url)
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%w: failed to decode response from %s: %v", ErrUnavailable, url, err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s: %v", ErrUnavailable, url, lastErr)
}
