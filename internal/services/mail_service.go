package services

import (
	"bytes"
	"fmt"
	"net/smtp"
	"net/url"
	"os"
	"strings"
	"text/template"
	"time"
)

type IMailService interface {
	SendPasswordResetEmail(to, token string) error
}

// SMTPConfig holds the mail transport settings; everything comes from env.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string

	AppName    string
	AppBaseURL string
}

func SMTPConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       os.Getenv("SMTP_PORT"),
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		AppName:    "CampusVoice",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}
}

type smtpMailService struct {
	cfg      SMTPConfig
	resetTpl *template.Template
}

const resetTextTemplate = `Reset your password

We received a request to reset your {{.AppName}} password. Open the link below
to continue. If you didn't request this, you can safely ignore this email.

{{.Link}}

- {{.AppName}} (c) {{.Year}}
`

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:      cfg,
		resetTpl: template.Must(template.New("reset").Parse(resetTextTemplate)),
	}
}

func (s *smtpMailService) SendPasswordResetEmail(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	var body bytes.Buffer
	err := s.resetTpl.Execute(&body, struct {
		AppName string
		Link    string
		Year    int
	}{s.cfg.AppName, link, time.Now().Year()})
	if err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: Reset your password\r\n")
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}
