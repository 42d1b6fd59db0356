package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/tunes/internal/domain"
	"golang.org/x/time/rate"
)

const userAgent = "Tunes/1.0"

// Options configures the search endpoint client
type Options struct {
	Endpoint      string        // Full URL of the search endpoint
	Media         string        // Optional media filter
	Entity        string        // Optional entity filter
	Country       string        // Optional store country
	Limit         int           // 0 = endpoint default
	Timeout       time.Duration // 0 = no timeout
	RatePerMinute int           // 0 = unlimited
}

// Client implements the search request strategy against the iTunes search API
type Client struct {
	http    *resty.Client
	opts    Options
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a new search endpoint client
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New()
	client.SetLogger(restyLogger{logger})
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", userAgent)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	c := &Client{
		http:   client,
		opts:   opts,
		logger: logger,
	}
	if opts.RatePerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RatePerMinute)), opts.RatePerMinute)
	}
	return c
}

// queryParams builds the query for term; resty percent-encodes the values
func (c *Client) queryParams(term string) map[string]string {
	params := map[string]string{"term": term}
	if c.opts.Media != "" {
		params["media"] = c.opts.Media
	}
	if c.opts.Entity != "" {
		params["entity"] = c.opts.Entity
	}
	if c.opts.Country != "" {
		params["country"] = c.opts.Country
	}
	if c.opts.Limit > 0 {
		params["limit"] = strconv.Itoa(c.opts.Limit)
	}
	return params
}

// Request searches the endpoint for term and returns the mapped results array
func (c *Client) Request(ctx context.Context, term string) ([]domain.Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
		}
	}

	c.logger.Debug("itunes request", "endpoint", c.opts.Endpoint, "term", term)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(c.queryParams(term)).
		Get(c.opts.Endpoint)
	if err != nil {
		c.logger.Error("itunes request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	if !resp.IsSuccess() {
		c.logger.Error("itunes request error", "status", resp.StatusCode(), "body", resp.String())
		return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode())
	}

	// The endpoint answers with text/javascript, so the body is decoded by
	// hand instead of through resty's content-type driven SetResult.
	var envelope SearchResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(resp.Body()))
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}

	c.logger.Debug("itunes response", "term", term, "results", len(envelope.Results), "resultCount", envelope.ResultCount)
	return MapResults(envelope.Results), nil
}

// restyLogger routes resty's own diagnostics into slog instead of stderr
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
