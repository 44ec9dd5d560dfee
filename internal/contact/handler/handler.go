package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/contact/models"
	"portfolio/internal/platform/middleware"
	dErrors "portfolio/pkg/domain-errors"
	"portfolio/pkg/platform/httputil"
)

const maxBodyBytes = 64 << 10

// Relay submits contact form posts.
type Relay interface {
	Submit(ctx context.Context, sub models.Submission) (*models.Response, error)
}

type Handler struct {
	relay  Relay
	logger *slog.Logger
}

func New(relay Relay, logger *slog.Logger) *Handler {
	return &Handler{relay: relay, logger: logger}
}

// Register mounts POST /api/contact on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	sub, err := decodeSubmission(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp, err := h.relay.Submit(ctx, sub)
	if err != nil {
		code := dErrors.CodeOf(err)
		switch code {
		case dErrors.CodeBadGateway, dErrors.CodeUnavailable:
			h.logger.WarnContext(ctx, "contact submission not delivered",
				"error", err,
				"request_id", middleware.GetRequestID(ctx),
			)
			msg := models.FailureMessage
			var de *dErrors.Error
			if errors.As(err, &de) {
				msg = de.Message
			}
			httputil.WriteJSON(w, dErrors.HTTPStatus(code), &models.Response{
				Success: false,
				Message: msg,
				Error:   string(code),
			})
		default:
			httputil.WriteError(w, err)
		}
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// decodeSubmission accepts a JSON body or a url-encoded/multipart form.
func decodeSubmission(r *http.Request) (models.Submission, error) {
	var sub models.Submission
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := httputil.DecodeJSON(r, &sub); err != nil {
			return sub, err
		}
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return sub, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid form body")
		}
		sub = models.Submission{
			Name:     r.PostFormValue("name"),
			LastName: r.PostFormValue("last_name"),
			Email:    r.PostFormValue("email"),
			Topic:    r.PostFormValue("topic"),
			Message:  r.PostFormValue("message"),
			Subject:  r.PostFormValue("subject"),
			Botcheck: r.PostFormValue("botcheck"),
		}
	default:
		return sub, dErrors.New(dErrors.CodeBadRequest, "unsupported content type")
	}
	return sub, nil
}
