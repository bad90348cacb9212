package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

const errInternalText = "Erreur interne"

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
		return
	}
}

// sendServiceErr answers with the status code matching a service error.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Authentification requise")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Accès refusé")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Note de frais introuvable")
	case errors.Is(err, entity.ErrBillProcessed):
		SendErr(ctx, w, http.StatusConflict, err, "La note de frais a déjà été traitée")
	case errors.Is(err, entity.ErrFileTooLarge):
		SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, "Fichier trop volumineux")
	case errors.Is(err, entity.ErrInvalidFileExtension):
		SendErr(ctx, w, http.StatusBadRequest, err, "Extension de fichier non autorisée")
	case errors.Is(err, entity.ErrIncorrectBill), errors.Is(err, entity.ErrIncorrectRequestBody):
		SendErr(ctx, w, http.StatusBadRequest, err, "Requête invalide")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, fallback)
	}
}
