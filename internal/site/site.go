// Package site renders the portfolio page and serves its static assets.
package site

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/carousel"
	"portfolio/internal/content"
	"portfolio/pkg/platform/httputil"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Carousel is the read side of the carousel controller.
type Carousel interface {
	Snapshot() carousel.Snapshot
	View() carousel.View
}

// Checker reports whether a dependency is ready to serve.
type Checker interface {
	Health(ctx context.Context) error
}

type Server struct {
	tmpl     *template.Template
	carousel Carousel
	profile  content.Profile
	chatLive bool
	checks   map[string]Checker
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Server)

// WithReadinessCheck adds a named dependency to /readyz.
func WithReadinessCheck(name string, c Checker) Option {
	return func(s *Server) {
		if c != nil {
			s.checks[name] = c
		}
	}
}

// WithChatOnline marks the assistant as backed by a live model.
func WithChatOnline(online bool) Option {
	return func(s *Server) {
		s.chatLive = online
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

func New(c Carousel, logger *slog.Logger, opts ...Option) (*Server, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	s := &Server{
		tmpl:     tmpl,
		carousel: c,
		profile:  content.SiteProfile(),
		checks:   map[string]Checker{},
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register mounts the page, assets and probes on r.
func (s *Server) Register(r chi.Router) {
	static, _ := fs.Sub(staticFS, "static")
	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
}

type card struct {
	carousel.Item
	Position int
}

type indicator struct {
	Index  int
	Active bool
}

type indexModel struct {
	Profile      content.Profile
	CompanyURL   string
	Cards        []card
	Indicators   []indicator
	Snapshot     carousel.Snapshot
	CardWidth    string
	Philosophy   []content.PhilosophyItem
	ChatOnline   bool
	Year         int
	TransitionMS int
}

func (s *Server) model() indexModel {
	snap := s.carousel.Snapshot()
	view := s.carousel.View()

	seq := view.Sequence()
	cards := make([]card, len(seq))
	for i, item := range seq {
		cards[i] = card{Item: item, Position: i}
	}
	indicators := make([]indicator, view.N())
	for i := range indicators {
		indicators[i] = indicator{Index: i, Active: i == snap.Active}
	}

	return indexModel{
		Profile:      s.profile,
		CompanyURL:   content.CompanyURL,
		Cards:        cards,
		Indicators:   indicators,
		Snapshot:     snap,
		CardWidth:    cardWidth(snap.VisibleItems),
		Philosophy:   content.Philosophy(),
		ChatOnline:   s.chatLive,
		Year:         s.now().Year(),
		TransitionMS: 1000,
	}
}

// cardWidth is the flex basis of one card, e.g. "33.3333%".
func cardWidth(visible int) string {
	if visible <= 0 {
		visible = 1
	}
	pct := math.Round(1e6/float64(visible)) / 1e4
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, s.model()); err != nil {
		s.logger.ErrorContext(r.Context(), "render index", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := readiness{Status: "ready", Checks: map[string]string{}}
	status := http.StatusOK
	for name, c := range s.checks {
		if err := c.Health(ctx); err != nil {
			s.logger.WarnContext(ctx, "readiness check failed", "check", name, "error", err)
			resp.Checks[name] = "unavailable"
			resp.Status = "not_ready"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	httputil.WriteJSON(w, status, resp)
}
