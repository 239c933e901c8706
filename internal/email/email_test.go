package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	mail "github.com/go-mail/mail"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, subject, html, text string
	err                     error
	calls                   int
}

func (f *fakeSender) Send(to, subject, htmlBody, textBody string) error {
	f.calls++
	f.to, f.subject, f.html, f.text = to, subject, htmlBody, textBody
	return f.err
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)
	require.NoError(t, n.SendWelcomeEmail(context.Background(), "example@domain.com"))
	require.Equal(t, "Sending welcome email to example@domain.com\n", buf.String())
}

func TestWelcomeNotifierRendersAndSends(t *testing.T) {
	fs := &fakeSender{}
	n, err := NewWelcomeNotifier(fs, WelcomeConfig{AppName: "Acme", Subject: "Hola"})
	require.NoError(t, err)

	require.NoError(t, n.SendWelcomeEmail(context.Background(), "a<b>@x"))
	require.Equal(t, 1, fs.calls)
	require.Equal(t, "a<b>@x", fs.to)
	require.Equal(t, "Hola", fs.subject)
	require.Contains(t, fs.html, "a&lt;b&gt;@x") // html/template escapa
	require.Contains(t, fs.text, "Hi a<b>@x,")
	require.Contains(t, fs.text, "Welcome to Acme!")
}

func TestWelcomeNotifierWrapsSendError(t *testing.T) {
	fs := &fakeSender{err: errors.New("conn refused")}
	n, err := NewWelcomeNotifier(fs, WelcomeConfig{})
	require.NoError(t, err)

	err = n.SendWelcomeEmail(context.Background(), "a@b")
	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorContains(t, err, "conn refused")
}

func TestWelcomeNotifierBadTemplate(t *testing.T) {
	_, err := NewWelcomeNotifier(&fakeSender{}, WelcomeConfig{HTMLTmpl: "{{.Email"})
	require.Error(t, err)

	_, err = NewWelcomeNotifier(nil, WelcomeConfig{})
	require.Error(t, err)
}

func TestSMTPSenderMessageAndDialer(t *testing.T) {
	s := NewSMTPSender("smtp.example.com", 465, "noreply@example.com", "u", "p")

	m := s.message("a@b", "Welcome!", "<p>hi</p>", "hi")
	require.Equal(t, []string{"noreply@example.com"}, m.GetHeader("From"))
	require.Equal(t, []string{"a@b"}, m.GetHeader("To"))
	require.Equal(t, []string{"Welcome!"}, m.GetHeader("Subject"))

	d := s.dialer()
	require.Equal(t, "smtp.example.com", d.TLSConfig.ServerName)
}

func TestSMTPSenderDialerTLSModes(t *testing.T) {
	cases := []struct {
		port   int
		mode   string
		ssl    bool
		policy mail.StartTLSPolicy
	}{
		{465, "auto", true, mail.OpportunisticStartTLS},
		{465, "ssl", true, mail.OpportunisticStartTLS},
		{465, "starttls", false, mail.MandatoryStartTLS},
		{465, "none", false, mail.NoStartTLS},
		{587, "auto", false, mail.OpportunisticStartTLS},
		{587, "ssl", true, mail.OpportunisticStartTLS},
		{587, "starttls", false, mail.MandatoryStartTLS},
		{587, "none", false, mail.NoStartTLS},
	}
	for _, c := range cases {
		s := NewSMTPSender("smtp.example.com", c.port, "noreply@example.com", "u", "p")
		s.TLSMode = c.mode
		d := s.dialer()
		require.Equal(t, c.ssl, d.SSL, "port %d mode %s", c.port, c.mode)
		require.Equal(t, c.policy, d.StartTLSPolicy, "port %d mode %s", c.port, c.mode)
	}
}
