package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/contact/metrics"
	"portfolio/internal/contact/models"
	dErrors "portfolio/pkg/domain-errors"
	"portfolio/pkg/platform/sentinel"
	"portfolio/pkg/requestcontext"
)

const (
	DefaultEndpoint = "https://api.web3forms.com/submit"
	DefaultTimeout  = 10 * time.Second

	maxUpstreamBody = 64 << 10
)

// Relay forwards contact submissions to the hosted form backend.
type Relay struct {
	client    *http.Client
	endpoint  string
	accessKey string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

type Option func(*Relay)

func WithEndpoint(endpoint string) Option {
	return func(r *Relay) {
		if endpoint != "" {
			r.endpoint = endpoint
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(r *Relay) {
		if c != nil {
			r.client = c
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Relay) {
		r.metrics = m
	}
}

// New builds a relay. An empty accessKey leaves the relay unconfigured and
// every Submit fails with service_unavailable.
func New(accessKey string, logger *slog.Logger, opts ...Option) *Relay {
	r := &Relay{
		client:    &http.Client{Timeout: DefaultTimeout},
		endpoint:  DefaultEndpoint,
		accessKey: accessKey,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configured reports whether an access key is present.
func (r *Relay) Configured() bool {
	return r.accessKey != ""
}

// Submit sanitizes, validates and relays sub. Honeypot submissions are
// acknowledged without being sent.
func (r *Relay) Submit(ctx context.Context, sub models.Submission) (*models.Response, error) {
	sub.Sanitize()
	if sub.IsBot() {
		r.record(metrics.OutcomeBot)
		r.logger.InfoContext(ctx, "contact honeypot triggered",
			"client_ip", requestcontext.ClientIP(ctx),
			"user_agent", requestcontext.UserAgent(ctx),
		)
		return &models.Response{Success: true, Message: models.SuccessMessage}, nil
	}
	if err := sub.Validate(); err != nil {
		r.record(metrics.OutcomeRejected)
		return nil, err
	}
	if !r.Configured() {
		r.record(metrics.OutcomeUnavailable)
		return nil, dErrors.Wrap(sentinel.ErrNotConfigured, dErrors.CodeUnavailable, models.UnavailableMessage)
	}

	reference := uuid.NewString()
	start := r.now()
	upstream, err := r.post(ctx, r.form(sub, reference))
	if r.metrics != nil {
		r.metrics.ObserveRelay(r.now().Sub(start).Seconds())
	}
	if err != nil {
		r.record(metrics.OutcomeFailed)
		r.logger.ErrorContext(ctx, "contact relay failed",
			"error", err,
			"reference", reference,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeBadGateway, models.FailureMessage)
	}

	r.record(metrics.OutcomeRelayed)
	r.logger.InfoContext(ctx, "contact submission relayed",
		"reference", reference,
		"topic", sub.Topic,
		"client_ip", requestcontext.ClientIP(ctx),
		"request_id", requestcontext.RequestID(ctx),
	)
	msg := upstream.Message
	if msg == "" {
		msg = models.SuccessMessage
	}
	return &models.Response{Success: true, Message: msg, Reference: reference}, nil
}

func (r *Relay) form(sub models.Submission, reference string) url.Values {
	form := url.Values{}
	form.Set("access_key", r.accessKey)
	form.Set("name", sub.Name)
	if sub.LastName != "" {
		form.Set("last_name", sub.LastName)
	}
	form.Set("email", sub.Email)
	form.Set("topic", sub.Topic)
	form.Set("subject", sub.Subject)
	form.Set("message", sub.Message)
	form.Set("reference", reference)
	return form
}

func (r *Relay) post(ctx context.Context, form url.Values) (*models.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post form: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var upstream models.UpstreamResponse
	if err := json.Unmarshal(body, &upstream); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !upstream.Success {
		return nil, fmt.Errorf("upstream rejected submission (status %d): %s", resp.StatusCode, upstream.Message)
	}
	return &upstream, nil
}

func (r *Relay) record(outcome string) {
	if r.metrics != nil {
		r.metrics.IncrementSubmission(outcome)
	}
}
