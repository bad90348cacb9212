package gomail

import "log/slog"

// Mock only logs the messages. Used when MAILER_ENABLED is off.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendMessage(subject, _ string, recipients []string, _ string) error {
	slog.Info("email not sent, mailer disabled", "subject", subject, "recipients", recipients)
	return nil
}
