package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizflow/settlement/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	description := ""
	if originErr != nil {
		description = originErr.Error()
	}

	slog.ErrorContext(ctx, "api error", "error", description, "message", msgToSend)
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: description})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendDomainErr maps domain sentinel errors to HTTP status codes.
func SendDomainErr(ctx context.Context, w http.ResponseWriter, err error, msgToSend string) {
	var code int

	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entity.ErrConflict), errors.Is(err, entity.ErrAlreadyPaid):
		code = http.StatusConflict
	case errors.Is(err, entity.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, entity.ErrGateway):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}

	SendJSONErr(ctx, w, code, err, msgToSend)
}
