package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apperrors "vagas/internal/errors"
	"vagas/internal/http/handler/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

var errInvalidID error = errors.New("id must be a positive integer")

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type responder struct {
	logs *zap.SugaredLogger
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// fail writes the envelope for a service error. Only the caller-safe message
// of a DomainError reaches the client.
func (h responder) fail(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	code := statusCode(err)

	detail := apperrors.MessageOf(err)
	if code == http.StatusInternalServerError || detail == "" {
		detail = oopsErr
	}

	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, code, requestId)

	if code == http.StatusInternalServerError {
		h.logs.Errorw("request failed",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
		return
	}
	h.logs.Infow("request rejected",
		"error", err,
		"status", code,
		"handler", handlerName,
		"request_id", requestId)
}

func (h responder) badRequest(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Infow("failed to decode and validate request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func statusCode(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrTypeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrTypeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrTypeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func requestID(r *http.Request) string {
	return middleware.RequestIDFrom(r.Context())
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 63)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
