package gomail

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/expenses/pkg/config"
)

func TestClient_NewMessage(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	c := New(config.Mailer{Host: "smtp.test.tld", Port: 465, From: "billed@test.tld", FromName: "Billed"})

	msg := c.newMessage("Note de frais : Accepté", "Votre note est acceptée.", []string{"employee@test.tld"}, "")

	var buf bytes.Buffer

	_, err := msg.WriteTo(&buf)
	r.NoError(err)

	raw := buf.String()
	r.Contains(raw, "To: employee@test.tld")
	r.Contains(raw, "From: \"Billed\" <billed@test.tld>")
	r.Contains(raw, "Content-Type: text/plain; charset=UTF-8")
	r.Contains(raw, base64.StdEncoding.EncodeToString([]byte("Votre note est acceptée.")))
	r.False(strings.Contains(raw, "text/html"))
}

func TestMock_SendMessage(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewMock().SendMessage("subject", "message", []string{"employee@test.tld"}, "text/plain"))
}
