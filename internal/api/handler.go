package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	CreateBill(ctx context.Context, file entity.File, email string) (entity.UploadResult, error)
	UpdateBill(ctx context.Context, id string, bill entity.Bill) (entity.Bill, error)
	ListBills(ctx context.Context) ([]entity.Bill, error)
	BillByID(ctx context.Context, id string) (entity.Bill, error)
	ChangeBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error
}

// @title Expenses API
// @version 1.0
// @description API des notes de frais : justificatifs, saisie et validation.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const multipartMemory = 1 << 20

type Handler struct {
	s             Service
	maxUploadSize int64
}

func NewHandler(s Service, maxUploadSize int64) *Handler {
	return &Handler{
		s:             s,
		maxUploadSize: maxUploadSize,
	}
}

// Health godoc
// @Summary      Vérification de l'état du service
// @Tags         health
// @Success      200 {string} string "Le service fonctionne"
// @Failure      500 {object} ResponseError "Le service ne fonctionne pas"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Le service fonctionne\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Le service ne fonctionne pas")
	}
}

// CreateBill godoc
// @Summary      Envoi d'un justificatif
// @Description  Enregistre le justificatif et crée un brouillon de note de frais
// @Tags         bills
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData file   true  "Justificatif (.jpg, .jpeg, .png)"
// @Param        email formData string false "Propriétaire de la note"
// @Success      201 {object} entity.UploadResult
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Accès refusé"
// @Failure      413 {object} ResponseError "Fichier trop volumineux"
// @Failure      500 {object} ResponseError "Erreur interne"
// @Router       /bills [post]
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartMemory)
	}

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %w", entity.ErrFileTooLarge, err), "Fichier trop volumineux")
			return
		}

		SendErr(ctx, w, http.StatusBadRequest, err, "Corps de requête invalide")

		return
	}

	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	f, header, err := r.FormFile("file")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Justificatif manquant")
		return
	}

	defer f.Close()

	res, err := h.s.CreateBill(ctx, entity.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     f,
	}, r.FormValue("email"))
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de l'envoi du justificatif")
		return
	}

	receiptsUploaded.Inc()

	SendJSON(ctx, w, http.StatusCreated, res)
}

// UpdateBill godoc
// @Summary      Soumission d'une note de frais
// @Description  Complète le brouillon et le soumet pour validation
// @Tags         bills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string      true "Identifiant de la note"
// @Param        request body entity.Bill true "Note de frais"
// @Success      200 {object} entity.Bill
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Accès refusé"
// @Failure      404 {object} ResponseError "Note de frais introuvable"
// @Failure      409 {object} ResponseError "Note de frais déjà traitée"
// @Failure      500 {object} ResponseError "Erreur interne"
// @Router       /bills/{id} [patch]
func (h *Handler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var bill entity.Bill

	err := json.NewDecoder(r.Body).Decode(&bill)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Corps de requête invalide")
		return
	}

	updated, err := h.s.UpdateBill(ctx, chi.URLParam(r, "id"), bill)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la soumission de la note de frais")
		return
	}

	billsSubmitted.Inc()

	SendJSON(ctx, w, http.StatusOK, updated)
}

// ListBills godoc
// @Summary      Liste des notes de frais
// @Description  Notes soumises de l'utilisateur, toutes les notes pour un administrateur
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  entity.Bill
// @Failure      401 {object} ResponseError "Authentification requise"
// @Failure      500 {object} ResponseError "Erreur interne"
// @Router       /bills [get]
func (h *Handler) ListBills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bills, err := h.s.ListBills(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération des notes de frais")
		return
	}

	SendJSON(ctx, w, http.StatusOK, bills)
}

// BillByID godoc
// @Summary      Détail d'une note de frais
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Identifiant de la note"
// @Success      200 {object} entity.Bill
// @Failure      403 {object} ResponseError "Accès refusé"
// @Failure      404 {object} ResponseError "Note de frais introuvable"
// @Failure      500 {object} ResponseError "Erreur interne"
// @Router       /bills/{id} [get]
func (h *Handler) BillByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bill, err := h.s.BillByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors de la récupération de la note de frais")
		return
	}

	SendJSON(ctx, w, http.StatusOK, bill)
}

type ChangeBillStatusRequest struct {
	Status entity.BillStatus `json:"status" enums:"accepted,refused"`
}

// ChangeBillStatus godoc
// @Summary      Validation d'une note de frais
// @Description  Accepte ou refuse une note soumise et prévient son auteur
// @Tags         bills
// @Accept       json
// @Security     BearerAuth
// @Param        id      path string                  true "Identifiant de la note"
// @Param        request body ChangeBillStatusRequest true "Nouveau statut"
// @Success      204
// @Failure      400 {object} ResponseError "Requête invalide"
// @Failure      403 {object} ResponseError "Accès réservé aux administrateurs"
// @Failure      404 {object} ResponseError "Note de frais introuvable"
// @Failure      500 {object} ResponseError "Erreur interne"
// @Router       /bills/{id}/status [put]
func (h *Handler) ChangeBillStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusNotFound, fmt.Errorf("%w: %w", entity.ErrNotFound, err), "Note de frais introuvable")
		return
	}

	var req ChangeBillStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Corps de requête invalide")
		return
	}

	err = h.s.ChangeBillStatus(ctx, id, req.Status)
	if err != nil {
		sendServiceErr(ctx, w, err, "Erreur lors du changement de statut")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
