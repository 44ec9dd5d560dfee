package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/carousel"
	"portfolio/internal/platform/middleware"
	dErrors "portfolio/pkg/domain-errors"
	"portfolio/pkg/platform/httputil"
)

// Controller is the carousel surface the HTTP layer drives.
type Controller interface {
	Snapshot() carousel.Snapshot
	View() carousel.View
	Next() carousel.Snapshot
	Prev() carousel.Snapshot
	JumpTo(index int) (carousel.Snapshot, error)
	BeginDrag() carousel.Snapshot
	EndDrag(offsetPixels float64) carousel.Snapshot
	HoverEnter() carousel.Snapshot
	HoverLeave() carousel.Snapshot
	Reconcile() (carousel.Snapshot, bool)
	SetViewportWidth(width int) (carousel.Snapshot, error)
}

// Handler exposes carousel input events to the page script.
type Handler struct {
	ctrl   Controller
	logger *slog.Logger
}

func New(ctrl Controller, logger *slog.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Register mounts the carousel routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/carousel", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Get("/", h.handleState)
		r.Post("/next", h.handleNext)
		r.Post("/prev", h.handlePrev)
		r.Post("/jump", h.handleJump)
		r.Post("/drag/start", h.handleDragStart)
		r.Post("/drag/end", h.handleDragEnd)
		r.Post("/hover/enter", h.handleHoverEnter)
		r.Post("/hover/leave", h.handleHoverLeave)
		r.Post("/reconcile", h.handleReconcile)
		r.Post("/viewport", h.handleViewport)
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.ctrl.Snapshot())
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.ctrl.Next())
}

func (h *Handler) handlePrev(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.ctrl.Prev())
}

func (h *Handler) handleJump(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req JumpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.Index == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "index is required"))
		return
	}

	snap, err := h.ctrl.JumpTo(*req.Index)
	if err != nil {
		h.logger.WarnContext(ctx, "rejected carousel jump",
			"request_id", middleware.GetRequestID(ctx),
			"index", *req.Index,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	h.writeState(w, snap)
}

func (h *Handler) handleDragStart(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.ctrl.BeginDrag())
}

func (h *Handler) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	var req DragEndRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.Offset == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "offset is required"))
		return
	}
	h.writeState(w, h.ctrl.EndDrag(*req.Offset))
}

func (h *Handler) handleHoverEnter(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.ctrl.HoverEnter())
}

func (h *Handler) handleHoverLeave(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, h.ctrl.HoverLeave())
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	snap, reset := h.ctrl.Reconcile()
	httputil.WriteJSON(w, http.StatusOK, ReconcileResponse{
		StateResponse: h.state(snap),
		Reset:         reset,
	})
}

func (h *Handler) handleViewport(w http.ResponseWriter, r *http.Request) {
	var req ViewportRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	snap, err := h.ctrl.SetViewportWidth(req.Width)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeState(w, snap)
}

func (h *Handler) writeState(w http.ResponseWriter, snap carousel.Snapshot) {
	httputil.WriteJSON(w, http.StatusOK, h.state(snap))
}

func (h *Handler) state(snap carousel.Snapshot) StateResponse {
	view := h.ctrl.View()
	return StateResponse{
		Snapshot:       snap,
		SequenceLength: view.Len(),
		Window:         view.Window(snap.Index, snap.VisibleItems),
	}
}
