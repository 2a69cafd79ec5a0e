package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/viraj5503/portfolio-api/internal/config"
	"github.com/viraj5503/portfolio-api/internal/model"
)

// Mailer sends one notification email per new contact submission over
// SMTP with implicit TLS. With no credentials configured it degrades to a
// logged no-op so the contact form keeps working without a mail account.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	to       string

	// sendFn performs the actual delivery; tests swap it out.
	sendFn func(ctx context.Context, msg []byte) error
}

// New creates a Mailer from the SMTP configuration. The notification
// recipient falls back to the authenticated account itself when unset.
func New(cfg config.SMTPConfig) *Mailer {
	m := &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		to:       cfg.To,
	}
	if m.to == "" {
		m.to = cfg.Username
	}
	m.sendFn = m.send
	return m
}

// Notify delivers the notification email for sub. It never reports an error
// to the caller: the submission is already persisted, so delivery problems
// are logged with the submission id and swallowed. At most one delivery
// attempt is made.
func (m *Mailer) Notify(ctx context.Context, sub *model.ContactSubmission) {
	if m.username == "" || m.password == "" {
		slog.Info("smtp credentials not configured, skipping notification",
			"submission_id", sub.ID)
		return
	}

	if err := m.sendFn(ctx, m.compose(sub)); err != nil {
		slog.Error("failed to send contact notification",
			"submission_id", sub.ID, "error", err)
		return
	}
	slog.Info("contact notification sent", "submission_id", sub.ID)
}

// headerValue folds CR and LF to spaces so a submitted value can never
// terminate the header line it is printed into.
func headerValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, s)
}

// compose builds the raw RFC 5322 message. The authenticated account is the
// envelope and header sender (keeps SPF/DKIM intact); Reply-To points at the
// submitter so the operator can answer directly. Submitter-controlled values
// pass through headerValue before reaching a header line.
func (m *Mailer) compose(sub *model.ContactSubmission) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s <%s>\r\n", headerValue(sub.Name), m.username)
	fmt.Fprintf(&b, "To: %s\r\n", m.to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerValue(sub.Email))
	fmt.Fprintf(&b, "Subject: New portfolio contact: %s\r\n", headerValue(sub.Subject))
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "You have received a new message from the portfolio contact form.\r\n\r\n")
	fmt.Fprintf(&b, "From: %s\r\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", sub.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", sub.Subject)
	b.WriteString("-----------------------------------\r\n\r\n")
	fmt.Fprintf(&b, "Message:\r\n%s\r\n", sub.Message)
	return b.Bytes()
}

// send submits msg over an implicit-TLS connection (the SMTPS port, 465 for
// providers like Gmail).
func (m *Mailer) send(ctx context.Context, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	dialer := &tls.Dialer{Config: &tls.Config{ServerName: m.host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if err := c.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
		return err
	}
	if err := c.Mail(m.username); err != nil {
		return err
	}
	if err := c.Rcpt(m.to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
