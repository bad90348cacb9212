package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/expenses/internal/clients/auth"
	"github.com/samandr77/microservices/expenses/internal/entity"
)

func TestClient_User(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	id := uuid.Must(uuid.NewV4())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.Equal(http.MethodPost, req.Method)
		r.Equal("/api/validate", req.URL.Path)
		r.Equal("Bearer token", req.Header.Get("Authorization"))

		var body auth.ValidateRequest
		r.NoError(json.NewDecoder(req.Body).Decode(&body))
		r.Equal("token", body.Token)

		_ = json.NewEncoder(w).Encode(auth.ValidateResponse{
			ID:    id,
			Email: "employee@test.tld",
		})
	}))
	t.Cleanup(srv.Close)

	user, err := auth.NewClient(srv.URL, 0).User(context.Background(), "token")
	r.NoError(err)
	r.Equal(entity.User{ID: id, Email: "employee@test.tld", Type: entity.UserTypeEmployee}, user)
}

func TestClient_User_Unauthorized(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	_, err := auth.NewClient(srv.URL, 3).User(context.Background(), "token")
	r.ErrorIs(err, entity.ErrUnauthenticated)
	r.Equal(int32(1), calls.Load())
}

func TestClient_User_Admin(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"` + uuid.Nil.String() + `","email":"admin@test.tld","type":"Admin"}`))
	}))
	t.Cleanup(srv.Close)

	user, err := auth.NewClient(srv.URL, 0).User(context.Background(), "token")
	r.NoError(err)
	r.True(user.IsAdmin())
}
