package bills

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/pkg/transport"
)

const timeout = time.Second * 30

// Client talks to the bills API on behalf of the signed in user. Failures are
// not retried.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) Create(ctx context.Context, file entity.File, email string) (entity.UploadResult, error) {
	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	err := mw.WriteField("email", email)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("write email field: %w", err)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("create file part: %w", err)
	}

	_, err = io.Copy(part, file.Content)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("copy file: %w", err)
	}

	err = mw.Close()
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("close multipart writer: %w", err)
	}

	var res entity.UploadResult

	err = c.do(ctx, http.MethodPost, "/api/bills", mw.FormDataContentType(), &body, http.StatusCreated, &res)
	if err != nil {
		return entity.UploadResult{}, err
	}

	return res, nil
}

func (c *Client) Update(ctx context.Context, id string, bill entity.Bill) (entity.Bill, error) {
	j, err := json.Marshal(bill)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("marshal bill: %w", err)
	}

	var res entity.Bill

	err = c.do(ctx, http.MethodPatch, "/api/bills/"+url.PathEscape(id), "application/json", bytes.NewReader(j), http.StatusOK, &res)
	if err != nil {
		return entity.Bill{}, err
	}

	return res, nil
}

func (c *Client) List(ctx context.Context) ([]entity.Bill, error) {
	var res []entity.Bill

	err := c.do(ctx, http.MethodGet, "/api/bills", "", nil, http.StatusOK, &res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) do(
	ctx context.Context,
	method, path, contentType string,
	body io.Reader,
	wantCode int,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token := entity.TokenFromContext(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != wantCode {
		return statusError(resp)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func statusError(resp *http.Response) *entity.StatusError {
	body, _ := io.ReadAll(resp.Body)

	var e errorResponse

	err := json.Unmarshal(body, &e)
	if err == nil && e.Error != "" {
		return &entity.StatusError{Code: resp.StatusCode, Message: e.Error}
	}

	return &entity.StatusError{Code: resp.StatusCode, Message: string(bytes.TrimSpace(body))}
}
