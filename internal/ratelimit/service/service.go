package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"portfolio/internal/ratelimit/models"
)

// BucketStore is a sliding-window counter keyed by string.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
	Reset(ctx context.Context, key string) error
}

// Service applies per-class budgets to client IPs.
type Service struct {
	buckets BucketStore
	limits  map[models.EndpointClass]models.Limit
	now     func() time.Time
}

type Option func(*Service)

// WithLimit sets the budget for one class.
func WithLimit(class models.EndpointClass, limit models.Limit) Option {
	return func(s *Service) {
		s.limits[class] = limit
	}
}

// WithClock overrides the time source used for Retry-After.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// DefaultLimits are the per-minute budgets used when none are configured.
func DefaultLimits() map[models.EndpointClass]models.Limit {
	return map[models.EndpointClass]models.Limit{
		models.ClassContact:  {Requests: 5, Window: time.Minute},
		models.ClassChat:     {Requests: 20, Window: time.Minute},
		models.ClassCarousel: {Requests: 240, Window: time.Minute},
	}
}

func New(buckets BucketStore, opts ...Option) (*Service, error) {
	if buckets == nil {
		return nil, errors.New("buckets store is required")
	}
	s := &Service{
		buckets: buckets,
		limits:  DefaultLimits(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CheckIP consumes one request from ip's budget for class.
func (s *Service) CheckIP(ctx context.Context, ip string, class models.EndpointClass) (*models.RateLimitResult, error) {
	limit, ok := s.limits[class]
	if !ok || !class.IsValid() {
		return nil, fmt.Errorf("unknown endpoint class %q", class)
	}

	result, err := s.buckets.Allow(ctx, models.IPKey(class, ip), limit.Requests, limit.Window)
	if err != nil {
		return nil, fmt.Errorf("check ip rate limit: %w", err)
	}
	if !result.Allowed {
		result.RetryAfter = retryAfterSeconds(result.ResetAt, s.now())
	}
	return result, nil
}

// ResetIP clears ip's budget for class.
func (s *Service) ResetIP(ctx context.Context, ip string, class models.EndpointClass) error {
	return s.buckets.Reset(ctx, models.IPKey(class, ip))
}

func retryAfterSeconds(resetAt, now time.Time) int {
	secs := int(math.Ceil(resetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
