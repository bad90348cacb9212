package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/ui"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Hidden fields carrying the new bill form state between requests.
const (
	fieldBillID   = "bill-id"
	fieldFileURL  = "file-url"
	fieldFileName = "file-name"
)

const multipartMemory = 1 << 20

type AuthClient interface {
	User(ctx context.Context, token string) (entity.User, error)
}

// Handler hosts the employee pages. Each request gets its own page instance
// wired to request scoped navigation, alerts and receipt viewer.
type Handler struct {
	store     ui.Store
	templates *template.Template
	logger    *slog.Logger
}

func NewHandler(store ui.Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:     store,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		logger:    logger,
	}
}

type page struct {
	nav    redirect
	alerts alerts
	modal  receiptPanel
}

func (h *Handler) newPage() (*page, ui.Deps) {
	p := &page{}

	return p, ui.Deps{
		Store:     h.store,
		Session:   session{},
		Navigator: &p.nav,
		Notifier:  &p.alerts,
		Modal:     &p.modal,
		Logger:    h.logger,
	}
}

type billsData struct {
	Title    string
	User     entity.User
	Rows     []ui.BillRow
	Receipt  string
	Alerts   []string
	NewRoute string
}

func (h *Handler) Bills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, deps := h.newPage()
	list := ui.NewBillList(deps)

	if receipt := r.URL.Query().Get("receipt"); receipt != "" {
		list.HandleClickIconEye(receipt)
	}

	user, _ := entity.UserFromContext(ctx)

	data := billsData{
		Title:    "Mes notes de frais",
		User:     user,
		Receipt:  p.modal.fileURL,
		NewRoute: ui.RouteBills + "/new",
	}

	code := http.StatusOK

	rows, err := list.ListBills(ctx)
	if err != nil {
		code = statusFor(err)
		data.Alerts = append(data.Alerts, "Impossible de charger les notes de frais.")
	}

	data.Rows = rows

	h.render(ctx, w, code, "bills.html", data)
}

// NewBill is the "Nouvelle note de frais" button of the bill list.
func (h *Handler) NewBill(w http.ResponseWriter, r *http.Request) {
	p, deps := h.newPage()

	ui.NewBillList(deps).HandleClickNewBill()

	http.Redirect(w, r, p.nav.route, http.StatusSeeOther)
}

type newBillData struct {
	Title        string
	User         entity.User
	State        ui.FormState
	Fields       url.Values
	ExpenseTypes []string
	Extensions   []string
	Alerts       []string
	FileRoute    string
	SubmitRoute  string
	BackRoute    string
}

func (h *Handler) NewBillForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.renderForm(ctx, w, http.StatusOK, ui.FormState{}, url.Values{}, nil)
}

// NewBillFile handles a receipt selection: the file is checked and uploaded
// before the rest of the form is filled. Only a rejected extension is shown
// to the user; a failed upload re-renders the form without receipt.
func (h *Handler) NewBillFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		h.renderForm(ctx, w, http.StatusBadRequest, ui.FormState{}, url.Values{}, []string{"Formulaire invalide."})
		return
	}

	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	p, deps := h.newPage()
	form := ui.NewNewBillForm(deps, stateFromForm(r.Form))

	input := newFileInput(r)
	defer input.Close()

	form.HandleChangeFile(ctx, input)

	h.renderForm(ctx, w, http.StatusOK, form.State(), r.Form, p.alerts.messages)
}

// NewBillSubmit saves the bill and goes back to the list.
func (h *Handler) NewBillSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := parseForm(r)
	if err != nil {
		h.renderForm(ctx, w, http.StatusBadRequest, ui.FormState{}, url.Values{}, []string{"Formulaire invalide."})
		return
	}

	p, deps := h.newPage()
	form := ui.NewNewBillForm(deps, stateFromForm(r.Form))

	err = form.HandleSubmit(ctx, r.Form)
	if err != nil {
		h.renderForm(ctx, w, statusFor(err), form.State(), r.Form, append(p.alerts.messages, submitMessage(err)))
		return
	}

	http.Redirect(w, r, p.nav.route, http.StatusSeeOther)
}

func (h *Handler) renderForm(
	ctx context.Context,
	w http.ResponseWriter,
	code int,
	state ui.FormState,
	fields url.Values,
	messages []string,
) {
	user, _ := entity.UserFromContext(ctx)

	h.render(ctx, w, code, "newbill.html", newBillData{
		Title:        "Envoyer une note de frais",
		User:         user,
		State:        state,
		Fields:       fields,
		ExpenseTypes: entity.ExpenseTypes,
		Extensions:   entity.ReceiptExtensions,
		Alerts:       messages,
		FileRoute:    ui.RouteNewBill + "/file",
		SubmitRoute:  ui.RouteNewBill,
		BackRoute:    ui.RouteBills,
	})
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer

	err := h.templates.ExecuteTemplate(&buf, name, data)
	if err != nil {
		h.logger.ErrorContext(ctx, "render template", "error", err, "template", name)
		http.Error(w, "Erreur interne", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	_, err = buf.WriteTo(w)
	if err != nil {
		h.logger.ErrorContext(ctx, "write page", "error", err)
	}
}

func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}

	return err
}

func stateFromForm(form url.Values) ui.FormState {
	return ui.FormState{
		BillID:   form.Get(fieldBillID),
		FileURL:  form.Get(fieldFileURL),
		FileName: form.Get(fieldFileName),
	}
}

func statusFor(err error) int {
	var statusErr *entity.StatusError

	switch {
	case errors.Is(err, entity.ErrReceiptMissing), errors.Is(err, entity.ErrIncorrectBill):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &statusErr) && statusErr.Code < http.StatusInternalServerError:
		return statusErr.Code
	default:
		return http.StatusBadGateway
	}
}

func submitMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrReceiptMissing):
		return "Veuillez joindre un justificatif avant d'envoyer la note de frais."
	case errors.Is(err, entity.ErrIncorrectBill):
		return "Veuillez vérifier les champs du formulaire."
	case errors.Is(err, entity.ErrNotFound):
		return "Cette note de frais n'existe plus, veuillez renvoyer le justificatif."
	case errors.Is(err, entity.ErrForbidden):
		return "Vous n'avez pas accès à cette note de frais."
	default:
		return "La note de frais n'a pas pu être enregistrée."
	}
}
