package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"

	"github.com/youpower/youpower-api/config"
)

type fakeSender struct {
	got      *mail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSender) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.got = email
	return f.response, f.err
}

func TestNew_NoKeyReturnsNoop(t *testing.T) {
	m := New(&config.Config{})
	assert.IsType(t, Noop{}, m)
	assert.NoError(t, m.Send(context.Background(), "A", "a@example.com", "s", "t", "h"))
}

func TestNew_WithKey(t *testing.T) {
	m := New(&config.Config{SendGridAPIKey: "key", SendGridFromEmail: "no-reply@youpower.example"})
	sg, ok := m.(*SendGrid)
	assert.True(t, ok)
	assert.Equal(t, "no-reply@youpower.example", sg.from.Address)
}

func TestSendGrid_Send(t *testing.T) {
	tests := []struct {
		name    string
		sender  *fakeSender
		wantErr bool
	}{
		{name: "accepted", sender: &fakeSender{response: &rest.Response{StatusCode: 202}}},
		{name: "error status", sender: &fakeSender{response: &rest.Response{StatusCode: 401, Body: "denied"}}, wantErr: true},
		{name: "transport error", sender: &fakeSender{err: errors.New("dial tcp")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SendGrid{client: tt.sender, from: mail.NewEmail(fromName, "no-reply@youpower.example")}
			err := s.Send(context.Background(), "Bob", "bob@example.com", "Subject", "text", "<p>html</p>")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "Subject", tt.sender.got.Subject)
			assert.Equal(t, "bob@example.com", tt.sender.got.Personalizations[0].To[0].Address)
		})
	}
}
