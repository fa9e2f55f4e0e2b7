package mailer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"gopkg.in/gomail.v2"

	"skm_backend/internals/configs"
	"skm_backend/internals/constants"
	"skm_backend/internals/log"
)

var (
	ErrNoRecipients  = errors.New("mailer: no recipients")
	ErrNotConfigured = errors.New("mailer: SMTP_HOST is not configured")
)

type Message struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []string // path file lokal
}

// Sender adalah dispatcher email yang dipakai job terjadwal.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUser,
		Password: configs.SMTPPassword,
		From:     configs.SMTPFrom,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if strings.TrimSpace(s.Host) == "" {
		return ErrNotConfigured
	}

	m := buildMessage(s.From, msg)
	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)

	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			log.Printf("[MAIL] ❌ gagal kirim %q ke %s: %v", msg.Subject, strings.Join(msg.To, ", "), err)
			return err
		}
		log.Printf("[MAIL] ✅ %q terkirim ke %s", msg.Subject, strings.Join(msg.To, ", "))
		return nil
	}
}

func buildMessage(from string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	for _, p := range msg.Attachments {
		m.Attach(p,
			gomail.Rename(filepath.Base(p)),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {constants.DetectContentType(p)},
			}),
		)
	}
	return m
}
