package transport

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"formulab/internal/report"
)

// maxRecipients caps how many of the record's contact addresses receive the
// report.
const maxRecipients = 2

// SMTPConfig carries externally injected mail credentials. Nothing here is
// ever hard-coded; the values come from the environment at startup.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends rendered reports as mail attachments over SMTP.
type Mailer struct {
	cfg    SMTPConfig
	send   func(m *gomail.Message) error
	logger *zap.Logger
}

func NewMailer(cfg SMTPConfig, logger *zap.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{
		cfg:    cfg,
		send:   func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		logger: logger,
	}
}

// Configured reports whether SMTP settings were supplied.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

// SendReport mails the document to at most two of the given addresses. The
// send is blocking and not retried; the error is surfaced to the caller.
func (m *Mailer) SendReport(recipients []string, subject, body string, doc report.Document) error {
	if !m.Configured() {
		return fmt.Errorf("smtp not configured")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}
	if len(recipients) > maxRecipients {
		recipients = recipients[:maxRecipients]
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(doc.Filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(doc.Bytes))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {doc.ContentType}}),
	)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send report mail: %w", err)
	}

	m.logger.Info("Report mailed",
		zap.Strings("recipients", recipients),
		zap.String("attachment", doc.Filename),
	)
	return nil
}
