package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"portfolio/internal/chat/metrics"
	"portfolio/internal/chat/models"
	dErrors "portfolio/pkg/domain-errors"
	"portfolio/pkg/platform/circuit"
	"portfolio/pkg/requestcontext"
)

const (
	DefaultTimeout          = 20 * time.Second
	DefaultMaxMessageLength = 2000
)

// Generator turns one user message into model text.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// Service answers chat messages. It never surfaces upstream failures to the
// caller: a missing key, an open circuit or a failed call all produce a static
// degraded reply.
type Service struct {
	generator Generator
	breaker   *circuit.Breaker
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	timeout   time.Duration
	maxLength int
	now       func() time.Time
}

type Option func(*Service)

func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		if b != nil {
			s.breaker = b
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithMaxMessageLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// New builds the service. A nil generator puts it in offline mode.
func New(generator Generator, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		generator: generator,
		logger:    logger,
		breaker:   circuit.New("chat", circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(2)),
		tracer:    otel.Tracer("portfolio/internal/chat"),
		timeout:   DefaultTimeout,
		maxLength: DefaultMaxMessageLength,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Offline reports whether no generator is configured.
func (s *Service) Offline() bool {
	return s.generator == nil
}

// Reply validates message and produces the widget reply.
func (s *Service) Reply(ctx context.Context, message string) (*models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "message is required")
	}
	if utf8.RuneCountInString(message) > s.maxLength {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("message exceeds %d characters", s.maxLength))
	}

	ctx, span := s.tracer.Start(ctx, "chat.Reply",
		trace.WithAttributes(
			attribute.Int("chat.message_length", utf8.RuneCountInString(message)),
			attribute.String("request.id", requestcontext.RequestID(ctx)),
		))
	defer span.End()

	if s.generator == nil {
		s.record(metrics.OutcomeOffline)
		span.SetAttributes(attribute.Bool("chat.degraded", true))
		return &models.ChatResponse{ResponseText: models.OfflineReply, Degraded: true}, nil
	}

	if !s.breaker.Allow() {
		s.record(metrics.OutcomeShedding)
		span.SetAttributes(attribute.Bool("chat.degraded", true), attribute.Bool("chat.circuit_open", true))
		return &models.ChatResponse{ResponseText: models.FailureReply, Degraded: true}, nil
	}

	text, err := s.generate(ctx, message)
	if err != nil {
		// a client hanging up is not an upstream failure
		if errors.Is(ctx.Err(), context.Canceled) {
			span.SetStatus(codes.Error, "client canceled")
			return nil, dErrors.Wrap(ctx.Err(), dErrors.CodeBadRequest, "request canceled")
		}
		_, change := s.breaker.RecordFailure()
		if change.Opened {
			s.setCircuit(true)
			s.logger.WarnContext(ctx, "chat circuit opened", "breaker", s.breaker.Name())
		}
		s.logger.ErrorContext(ctx, "gemini generation failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		s.record(metrics.OutcomeFailed)
		return &models.ChatResponse{ResponseText: models.FailureReply, Degraded: true}, nil
	}

	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.setCircuit(false)
		s.logger.InfoContext(ctx, "chat circuit closed", "breaker", s.breaker.Name())
	}

	if strings.TrimSpace(text) == "" {
		s.record(metrics.OutcomeEmpty)
		span.SetAttributes(attribute.Bool("chat.degraded", true))
		return &models.ChatResponse{ResponseText: models.EmptyReply, Degraded: true}, nil
	}

	s.record(metrics.OutcomeOK)
	return &models.ChatResponse{ResponseText: text}, nil
}

func (s *Service) generate(ctx context.Context, message string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	text, err := s.generator.Generate(callCtx, message)
	if s.metrics != nil {
		s.metrics.ObserveGeneration(s.now().Sub(start).Seconds())
	}
	return text, err
}

func (s *Service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementReply(outcome)
	}
}

func (s *Service) setCircuit(open bool) {
	if s.metrics != nil {
		s.metrics.SetCircuitOpen(open)
	}
}
