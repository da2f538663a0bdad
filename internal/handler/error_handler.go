package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bagdasarian/choreo-timeline/internal/domain"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		// RequestOrderError несет подробности, которых нет в общем ErrRequestOrder
		message := domainErr.Message
		var orderErr *domain.RequestOrderError
		if errors.As(err, &orderErr) {
			message = orderErr.Error()
		}
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: message,
			},
		})
		return
	}

	h.logger.Error("request failed", err,
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path),
		logging.String("request_id", middleware.GetReqID(r.Context())),
	)

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func badRequest(format string, a ...any) *domain.DomainError {
	return &domain.DomainError{
		Code:    "BAD_REQUEST",
		Message: fmt.Sprintf(format, a...),
	}
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "VALIDATION", "BAD_REQUEST":
		return http.StatusBadRequest
	case "REQUEST_ORDER", "TEAM_EXISTS", "PARTICIPANT_EXISTS":
		return http.StatusConflict
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
