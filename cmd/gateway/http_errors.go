package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	catalogapp "github.com/dwikikusuma/cart-widget/internal/catalog/app"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromErr maps catalog errors onto an HTTP status, a stable error
// code and a message safe to show clients.
func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", "invalid input"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "not found"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "UNAVAILABLE", "catalog unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(log *slog.Logger, w http.ResponseWriter, err error) {
	status, code, msg := httpStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", slog.String("code", code), slog.Any("err", err))
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}
