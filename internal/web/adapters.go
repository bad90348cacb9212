package web

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

// session reads the user resolved by the Session middleware.
type session struct{}

func (session) CurrentUser(ctx context.Context) (entity.User, error) {
	return entity.UserFromContext(ctx)
}

// redirect turns a navigation into a 303 answer once the action is done.
type redirect struct {
	route string
}

func (n *redirect) Navigate(route string) {
	n.route = route
}

// alerts collects messages rendered as a banner on the next page.
type alerts struct {
	messages []string
}

func (a *alerts) Alert(message string) {
	a.messages = append(a.messages, message)
}

// receiptPanel is the receipt viewer rendered over the bill list.
type receiptPanel struct {
	fileURL string
}

func (m *receiptPanel) Show(fileURL string) {
	m.fileURL = fileURL
}

// fileInput is the "file" part of a multipart request. Clearing it only
// affects the re-rendered form, the request itself is left untouched.
type fileInput struct {
	r       *http.Request
	file    multipart.File
	cleared bool
}

func newFileInput(r *http.Request) *fileInput {
	return &fileInput{r: r}
}

func (i *fileInput) File() (entity.File, bool) {
	if i.cleared {
		return entity.File{}, false
	}

	f, header, err := i.r.FormFile("file")
	if err != nil {
		return entity.File{}, false
	}

	i.file = f

	return entity.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     f,
	}, true
}

func (i *fileInput) Clear() {
	i.cleared = true
}

func (i *fileInput) Close() error {
	if i.file == nil {
		return nil
	}

	return i.file.Close()
}
