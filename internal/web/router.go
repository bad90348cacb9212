package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/ui"
	"github.com/samandr77/microservices/expenses/pkg/logger"
)

const tokenCookie = "token"

// Middleware is the part of the API middleware set shared with the pages.
type Middleware interface {
	Log(next http.Handler) http.Handler
	Recover(next http.Handler) http.Handler
}

func NewRouter(h *Handler, mw Middleware, auth AuthClient) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, Session(auth))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, ui.RouteBills, http.StatusSeeOther)
	})

	router.Get(ui.RouteBills, h.Bills)
	router.Get(ui.RouteBills+"/new", h.NewBill)
	router.Get(ui.RouteNewBill, h.NewBillForm)
	router.Post(ui.RouteNewBill+"/file", h.NewBillFile)
	router.Post(ui.RouteNewBill, h.NewBillSubmit)

	return router
}

var tokenExtractor = request.MultiExtractor{
	request.BearerExtractor{},
	cookieExtractor(tokenCookie),
}

type cookieExtractor string

func (e cookieExtractor) ExtractToken(r *http.Request) (string, error) {
	c, err := r.Cookie(string(e))
	if err != nil || c.Value == "" {
		return "", request.ErrNoTokenInRequest
	}

	return c.Value, nil
}

// Session resolves the signed in employee from the token cookie or the
// Authorization header.
func Session(auth AuthClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokenExtractor.ExtractToken(r)
			if err != nil {
				http.Error(w, "Authentification requise", http.StatusUnauthorized)
				return
			}

			user, err := auth.User(ctx, token)
			if err != nil {
				if errors.Is(err, entity.ErrUnauthenticated) {
					http.Error(w, "Session expirée, veuillez vous reconnecter", http.StatusUnauthorized)
					return
				}

				http.Error(w, "Erreur interne", http.StatusInternalServerError)

				return
			}

			ctx = logger.SetUserID(ctx, user.ID.String())
			ctx = entity.SetUserToContext(ctx, user)
			ctx = entity.SetTokenToContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
