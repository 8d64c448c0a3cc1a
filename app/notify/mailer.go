package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// DispatchError marks a notification failure. It is distinct from a store
// error: the submission itself is already persisted when dispatch fails.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Mailer sends a single operator notification.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends notifications through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates an SMTPMailer. Auth is skipped when username is empty.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		from: from,
		auth: auth,
	}
}

// Send delivers one message. Failures come back wrapped in a DispatchError.
func (m *SMTPMailer) Send(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}

// LogMailer writes notifications to the process log instead of sending them.
// Used when no SMTP host is configured, e.g. local development.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("mail (log only) to=%s subject=%q\n%s", to, subject, body)
	return nil
}
