package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"portfolio/internal/carousel"
)

// HandlerSuite drives a real controller through the HTTP surface.
type HandlerSuite struct {
	suite.Suite
	ctrl   *carousel.Controller
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	items := []carousel.Item{
		{ID: "1", Name: "Desk Work Solution"},
		{ID: "2", Name: "Enterprise ERP System"},
		{ID: "3", Name: "FinTech Mobile App"},
		{ID: "4", Name: "E-Commerce Platform"},
	}
	ctrl, err := carousel.New(items, carousel.WithVisibleItems(3))
	require.NoError(s.T(), err)
	s.ctrl = ctrl

	r := chi.NewRouter()
	New(ctrl, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decodeState(rec *httptest.ResponseRecorder) StateResponse {
	var resp StateResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func (s *HandlerSuite) TestState() {
	rec := s.do(http.MethodGet, "/api/carousel/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := s.decodeState(rec)
	s.Equal(0, resp.Index)
	s.Equal(4, resp.Count)
	s.Equal(12, resp.SequenceLength)
	s.Equal("0%", resp.Offset)
	s.Require().Len(resp.Window, 3)
	s.Equal("1", resp.Window[0].ID)
}

func (s *HandlerSuite) TestNextAndPrev() {
	resp := s.decodeState(s.do(http.MethodPost, "/api/carousel/next", nil))
	s.Equal(1, resp.Index)
	s.True(resp.Paused)
	s.Equal("-33.3333%", resp.Offset)

	s.do(http.MethodPost, "/api/carousel/prev", nil)
	resp = s.decodeState(s.do(http.MethodPost, "/api/carousel/prev", nil))
	s.Equal(3, resp.Index)
	s.Equal([]string{"4", "1", "2"}, []string{resp.Window[0].ID, resp.Window[1].ID, resp.Window[2].ID})
}

func (s *HandlerSuite) TestJump() {
	s.Run("valid index", func() {
		rec := s.do(http.MethodPost, "/api/carousel/jump", map[string]int{"index": 2})
		s.Require().Equal(http.StatusOK, rec.Code)
		resp := s.decodeState(rec)
		s.Equal(2, resp.Index)
		s.True(resp.Paused)
	})

	s.Run("out of range", func() {
		rec := s.do(http.MethodPost, "/api/carousel/jump", map[string]int{"index": 4})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "invalid_input")
		s.Equal(2, s.ctrl.Snapshot().Index)
	})

	s.Run("missing index", func() {
		rec := s.do(http.MethodPost, "/api/carousel/jump", map[string]int{})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "validation_error")
	})

	s.Run("wrong content type", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/carousel/jump", bytes.NewBufferString("index=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	})
}

func (s *HandlerSuite) TestDrag() {
	resp := s.decodeState(s.do(http.MethodPost, "/api/carousel/drag/start", nil))
	s.True(resp.Dragging)
	s.False(s.ctrl.Tick(), "timer suspended during drag")

	resp = s.decodeState(s.do(http.MethodPost, "/api/carousel/drag/end", map[string]float64{"offset": -51}))
	s.False(resp.Dragging)
	s.True(resp.Paused)
	s.Equal(1, resp.Index)

	resp = s.decodeState(s.do(http.MethodPost, "/api/carousel/drag/end", map[string]float64{"offset": 49}))
	s.Equal(1, resp.Index)

	rec := s.do(http.MethodPost, "/api/carousel/drag/end", map[string]string{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestHover() {
	resp := s.decodeState(s.do(http.MethodPost, "/api/carousel/hover/enter", nil))
	s.True(resp.Paused)
	s.False(s.ctrl.Tick())

	resp = s.decodeState(s.do(http.MethodPost, "/api/carousel/hover/leave", nil))
	s.False(resp.Paused)
	s.True(s.ctrl.Tick())
}

func (s *HandlerSuite) TestReconcile() {
	for range 4 {
		s.ctrl.Tick()
	}

	rec := s.do(http.MethodPost, "/api/carousel/reconcile", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp ReconcileResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.True(resp.Reset)
	s.Equal(0, resp.Index)
	s.False(resp.Animate)
}

func (s *HandlerSuite) TestViewport() {
	resp := s.decodeState(s.do(http.MethodPost, "/api/carousel/viewport", map[string]int{"width": 390}))
	s.Equal(1, resp.VisibleItems)
	s.Len(resp.Window, 1)

	rec := s.do(http.MethodPost, "/api/carousel/viewport", map[string]int{"width": 0})
	s.Equal(http.StatusBadRequest, rec.Code)
}
