package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var Health = "GET /healthz"

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	responder
	db Pinger
}

func NewHealthHandler(logger *zap.SugaredLogger, db Pinger) *HealthHandler {
	return &HealthHandler{
		responder: responder{logs: logger},
		db:        db,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.respond(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable, requestId)
		h.logs.Warnw("database ping failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"status": "ok"}, http.StatusOK, requestId)
}
