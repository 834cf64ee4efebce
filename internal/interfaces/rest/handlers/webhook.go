package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/doga-whatsapp-agent/internal/application/services"
	"github.com/DanielPopoola/doga-whatsapp-agent/internal/interfaces/rest"
)

// MessageRouter handles one inbound chat message.
type MessageRouter interface {
	Handle(ctx context.Context, msg services.InboundMessage) services.Reply
}

type Handlers struct {
	router MessageRouter
	logger *slog.Logger
}

func NewHandlers(router MessageRouter, logger *slog.Logger) *Handlers {
	return &Handlers{
		router: router,
		logger: logger,
	}
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /whatsapp", h.Inbound)
	mux.HandleFunc("GET /healthz", h.Health)
}

// Inbound handles the gateway webhook. A form that cannot be parsed is
// routed as an empty message, which yields the help reply.
func (h *Handlers) Inbound(w http.ResponseWriter, r *http.Request) {
	var msg services.InboundMessage
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed webhook form", "error", err)
	} else {
		msg.Body = r.PostForm.Get("Body")
		msg.From = r.PostForm.Get("From")
	}

	reply := h.router.Handle(r.Context(), msg)
	rest.WriteReply(w, reply.Body, h.logger)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}
