package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/expenses/internal/api"
	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/mocks"
)

const maxUploadSize = 1 << 10

var (
	employee = entity.User{ID: uuid.Must(uuid.NewV4()), Email: "employee@test.tld", Type: entity.UserTypeEmployee}
	admin    = entity.User{ID: uuid.Must(uuid.NewV4()), Email: "admin@test.tld", Type: entity.UserTypeAdmin}
)

type fakeAuth struct {
	users map[string]entity.User
}

func (f fakeAuth) User(_ context.Context, token string) (entity.User, error) {
	user, ok := f.users[token]
	if !ok {
		return entity.User{}, &entity.StatusError{Code: http.StatusUnauthorized}
	}

	return user, nil
}

func newServer(t *testing.T) (*httptest.Server, *mocks.MockService) {
	t.Helper()

	svc := mocks.NewMockService(gomock.NewController(t))
	auth := fakeAuth{users: map[string]entity.User{
		"employee-token": employee,
		"admin-token":    admin,
	}}

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(svc, maxUploadSize), api.NewMiddleware(auth)))
	t.Cleanup(srv.Close)

	return srv, svc
}

func do(t *testing.T, method, url, token, contentType string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func multipartBody(t *testing.T, fileName, content, email string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	if email != "" {
		require.NoError(t, mw.WriteField("email", email))
	}

	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)

		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/health", "", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Metrics(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, _ := newServer(t)

	do(t, http.MethodGet, srv.URL+"/api/health", "", "", nil)

	resp := do(t, http.MethodGet, srv.URL+"/metrics", "", "", nil)
	r.Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	r.NoError(err)
	r.Contains(string(body), `expenses_http_requests_total{code="200",method="GET",route="/api/health"}`)
}

func TestHandler_Unauthorized(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, _ := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/bills", "", "", nil)
	r.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/bills", "unknown-token", "", nil)
	r.Equal(http.StatusUnauthorized, resp.StatusCode)

	var res api.ResponseError
	r.NoError(json.NewDecoder(resp.Body).Decode(&res))
	r.Equal("Jeton d'accès invalide", res.Message)
}

func TestHandler_CreateBill(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, svc := newServer(t)

	svc.EXPECT().CreateBill(gomock.Any(), gomock.Any(), "employee@test.tld").
		DoAndReturn(func(ctx context.Context, file entity.File, _ string) (entity.UploadResult, error) {
			user, err := entity.UserFromContext(ctx)
			r.NoError(err)
			r.Equal(employee, user)

			r.Equal("receipt.jpg", file.Name)
			r.Equal(int64(7), file.Size)

			data, err := io.ReadAll(file.Content)
			r.NoError(err)
			r.Equal("receipt", string(data))

			return entity.UploadResult{FileURL: "https://files.test.tld/receipt.jpg", Key: "1234"}, nil
		})

	body, contentType := multipartBody(t, "receipt.jpg", "receipt", "employee@test.tld")

	resp := do(t, http.MethodPost, srv.URL+"/api/bills", "employee-token", contentType, body)
	r.Equal(http.StatusCreated, resp.StatusCode)

	var res entity.UploadResult
	r.NoError(json.NewDecoder(resp.Body).Decode(&res))
	r.Equal(entity.UploadResult{FileURL: "https://files.test.tld/receipt.jpg", Key: "1234"}, res)
}

func TestHandler_CreateBill_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fileName   string
		content    string
		serviceErr error
		callsSvc   bool
		code       int
	}{
		{
			name: "no file",
			code: http.StatusBadRequest,
		},
		{
			name:       "invalid extension",
			fileName:   "receipt.pdf",
			content:    "receipt",
			serviceErr: entity.ErrInvalidFileExtension,
			callsSvc:   true,
			code:       http.StatusBadRequest,
		},
		{
			name:       "file too large",
			fileName:   "receipt.jpg",
			content:    "receipt",
			serviceErr: entity.ErrFileTooLarge,
			callsSvc:   true,
			code:       http.StatusRequestEntityTooLarge,
		},
		{
			name:       "storage failure",
			fileName:   "receipt.jpg",
			content:    "receipt",
			serviceErr: errors.New("mocked error"),
			callsSvc:   true,
			code:       http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, svc := newServer(t)

			if tt.callsSvc {
				svc.EXPECT().CreateBill(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.UploadResult{}, tt.serviceErr)
			}

			body, contentType := multipartBody(t, tt.fileName, tt.content, "")

			resp := do(t, http.MethodPost, srv.URL+"/api/bills", "employee-token", contentType, body)
			require.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestHandler_UpdateBill(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, svc := newServer(t)

	bill := entity.Bill{
		Type:   "Transports",
		Name:   "Paris - Lyon",
		Amount: decimal.RequireFromString("120.5"),
		Date:   "2024-04-04",
	}

	svc.EXPECT().UpdateBill(gomock.Any(), "1234", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, b entity.Bill) (entity.Bill, error) {
			r.Equal(bill.Name, b.Name)
			r.True(bill.Amount.Equal(b.Amount))

			b.ID = id
			b.Status = entity.BillStatusPending

			return b, nil
		})

	j, err := json.Marshal(bill)
	r.NoError(err)

	resp := do(t, http.MethodPatch, srv.URL+"/api/bills/1234", "employee-token", "application/json", bytes.NewReader(j))
	r.Equal(http.StatusOK, resp.StatusCode)

	var got entity.Bill
	r.NoError(json.NewDecoder(resp.Body).Decode(&got))
	r.Equal("1234", got.ID)
	r.Equal(entity.BillStatusPending, got.Status)
}

func TestHandler_UpdateBill_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		serviceErr error
		code       int
	}{
		{name: "malformed body", body: "{", code: http.StatusBadRequest},
		{name: "not found", body: "{}", serviceErr: entity.ErrNotFound, code: http.StatusNotFound},
		{name: "forbidden", body: "{}", serviceErr: entity.ErrForbidden, code: http.StatusForbidden},
		{name: "invalid bill", body: "{}", serviceErr: entity.ErrIncorrectBill, code: http.StatusBadRequest},
		{name: "processed", body: "{}", serviceErr: entity.ErrBillProcessed, code: http.StatusConflict},
		{name: "internal", body: "{}", serviceErr: errors.New("mocked error"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			srv, svc := newServer(t)

			if tt.serviceErr != nil {
				svc.EXPECT().UpdateBill(gomock.Any(), "1234", gomock.Any()).Return(entity.Bill{}, tt.serviceErr)
			}

			resp := do(t, http.MethodPatch, srv.URL+"/api/bills/1234", "employee-token", "application/json", strings.NewReader(tt.body))
			r.Equal(tt.code, resp.StatusCode)

			var res api.ResponseError
			r.NoError(json.NewDecoder(resp.Body).Decode(&res))
			r.NotEmpty(res.Error)
		})
	}
}

func TestHandler_ListBills(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, svc := newServer(t)

	bills := []entity.Bill{
		{ID: "a", Date: "2004-04-04", Status: entity.BillStatusPending},
		{ID: "b", Date: "2003-03-03", Status: entity.BillStatusAccepted},
	}

	svc.EXPECT().ListBills(gomock.Any()).Return(bills, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/bills", "employee-token", "", nil)
	r.Equal(http.StatusOK, resp.StatusCode)

	var got []entity.Bill
	r.NoError(json.NewDecoder(resp.Body).Decode(&got))
	r.Len(got, 2)
	r.Equal("a", got[0].ID)
	r.Equal(entity.BillStatusAccepted, got[1].Status)
}

func TestHandler_BillByID(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, svc := newServer(t)

	svc.EXPECT().BillByID(gomock.Any(), "a").Return(entity.Bill{ID: "a"}, nil)
	svc.EXPECT().BillByID(gomock.Any(), "b").Return(entity.Bill{}, entity.ErrForbidden)

	resp := do(t, http.MethodGet, srv.URL+"/api/bills/a", "employee-token", "", nil)
	r.Equal(http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/bills/b", "employee-token", "", nil)
	r.Equal(http.StatusForbidden, resp.StatusCode)
}

func TestHandler_ChangeBillStatus(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	srv, svc := newServer(t)
	id := uuid.Must(uuid.NewV4())
	url := srv.URL + "/api/bills/" + id.String() + "/status"

	svc.EXPECT().ChangeBillStatus(gomock.Any(), id, entity.BillStatusAccepted).Return(nil)

	resp := do(t, http.MethodPut, url, "employee-token", "application/json", strings.NewReader(`{"status":"accepted"}`))
	r.Equal(http.StatusForbidden, resp.StatusCode)

	resp = do(t, http.MethodPut, url, "admin-token", "application/json", strings.NewReader(`{"status":"accepted"}`))
	r.Equal(http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodPut, srv.URL+"/api/bills/47qAXb6fIm2zOKkLzMro/status", "admin-token", "application/json",
		strings.NewReader(`{"status":"accepted"}`))
	r.Equal(http.StatusNotFound, resp.StatusCode)
}
