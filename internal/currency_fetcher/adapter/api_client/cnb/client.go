package cnb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/langowen/cnbrates/internal/entities"
	"github.com/langowen/cnbrates/internal/metrics"
	"github.com/pkg/errors"
)

type Options struct {
	BaseURL        string
	DailyRatesPath string
	Lang           string
	Timeout        time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
}

// HTTPClient fetches daily rate documents from the CNB API. Every error it
// returns is an *entities.SourceError.
type HTTPClient struct {
	client   *http.Client
	endpoint *url.URL
	opts     Options
	metrics  *metrics.Metrics
}

type dailyRates struct {
	Rates []*entities.RawRate `json:"rates"`
}

type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("bad status: %s", e.status)
}

func NewHTTPClient(opts Options, m *metrics.Metrics) (*HTTPClient, error) {
	const op = "cnb.NewHTTPClient"

	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("%s: base url %q must be absolute", op, opts.BaseURL)
	}

	if opts.RetryAttempts < 1 {
		opts.RetryAttempts = 1
	}

	return &HTTPClient{
		client:   &http.Client{},
		endpoint: base.JoinPath(opts.DailyRatesPath),
		opts:     opts,
		metrics:  m,
	}, nil
}

// DailyRates returns the records of the latest document or of the one
// published for day. The timeout covers all attempts together.
func (c *HTTPClient) DailyRates(ctx context.Context, day entities.Day) ([]*entities.RawRate, error) {
	const op = "cnb.DailyRates"

	start := time.Now()
	label := dayLabel(day)

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	reqURL := c.requestURL(day)

	var body []byte
	attempt := 0

	operation := func() error {
		attempt++

		b, err := c.get(ctx, reqURL)
		if err != nil {
			if ctx.Err() != nil || !isTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		body = b
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.metrics.IncRetry()
		slog.Warn("Rate source request failed, retrying",
			"op", op,
			"day", day.String(),
			"attempt", attempt,
			"wait", wait,
			"error", err,
		)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.opts.RetryDelay), uint64(c.opts.RetryAttempts-1)),
		ctx,
	)

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Wrapf(ctxErr, "%v", err)
		}

		srcErr := entities.NewSourceError(classify(ctx, err), errors.Wrap(err, op))
		c.metrics.ObserveFetch(label, srcErr.Kind.String(), time.Since(start))
		slog.Error("Rate source request failed", "op", op, "day", day.String(), "attempts", attempt, "error", srcErr)
		return nil, srcErr
	}

	rates, err := decode(body)
	if err != nil {
		srcErr := entities.NewSourceError(entities.SourceFormat, errors.Wrap(err, op))
		c.metrics.ObserveFetch(label, srcErr.Kind.String(), time.Since(start))
		slog.Error("Rate source returned invalid document", "op", op, "day", day.String(), "error", err)
		return nil, srcErr
	}

	c.metrics.ObserveFetch(label, "ok", time.Since(start))
	slog.Debug("Fetched daily rates", "op", op, "day", day.String(), "records", len(rates), "attempts", attempt)

	return rates, nil
}

func (c *HTTPClient) requestURL(day entities.Day) string {
	u := *c.endpoint

	if !day.IsLatest() {
		q := u.Query()
		q.Set("date", day.String())
		if c.opts.Lang != "" {
			q.Set("lang", c.opts.Lang)
		}
		u.RawQuery = q.Encode()
	}

	return u.String()
}

func (c *HTTPClient) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request error")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "api_client get error")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body error")
	}

	return body, nil
}

func decode(body []byte) ([]*entities.RawRate, error) {
	var doc *dailyRates
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "json unmarshal error")
	}

	if doc == nil {
		return nil, errors.New("empty document")
	}
	if doc.Rates == nil {
		return nil, errors.New("document has no rates")
	}

	return doc.Rates, nil
}

// isTransient reports network failures and 5xx or 408 responses.
func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusRequestTimeout
	}

	return true
}

func classify(ctx context.Context, err error) entities.SourceErrorKind {
	if ctx.Err() != nil ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return entities.SourceTimeout
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return entities.SourceTimeout
	}

	return entities.SourceTransport
}

func dayLabel(day entities.Day) string {
	if day.IsLatest() {
		return "latest"
	}
	return "date"
}
