package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

type MailServiceInterface interface {
	SendPasswordResetMail(to, token string) error
	SendReceiptMail(to, tripTitle string, amount int) error
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{
		cfg: cfg,
		tpl: template.Must(template.New("mail").Parse(mailHTMLTemplate)),
	}
}

type mailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

func (s *smtpMailService) SendPasswordResetMail(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	return s.send(to, "Reset your password", mailData{
		Title:     "Reset your password",
		Intro:     "We received a request to reset your password. Click the button below to continue. If you did not request this, you can safely ignore this email.",
		ButtonURL: link,
		ButtonTxt: "Reset Password",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
}

func (s *smtpMailService) SendReceiptMail(to, tripTitle string, amount int) error {
	return s.send(to, "Your itinerary export is ready", mailData{
		Title: "Payment received",
		Intro: fmt.Sprintf("Thanks for your purchase. The PDF export for %q is now unlocked ($%d.%02d USD).",
			tripTitle, amount/100, amount%100),
		ButtonURL: s.cfg.AppBaseURL,
		ButtonTxt: "Open " + s.cfg.AppName,
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
}

func (s *smtpMailService) send(to, subject string, data mailData) error {
	var body bytes.Buffer
	if err := s.tpl.Execute(&body, data); err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

const mailHTMLTemplate = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:32px 16px;">
      <table role="presentation" width="520" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
        <tr><td style="font-size:20px;font-weight:bold;color:#111827;padding-bottom:16px;">{{.Title}}</td></tr>
        <tr><td style="font-size:14px;color:#374151;line-height:1.6;padding-bottom:24px;">{{.Intro}}</td></tr>
        {{if .ButtonURL}}
        <tr><td align="center" style="padding-bottom:24px;">
          <a href="{{.ButtonURL}}" style="background:#2563eb;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:6px;font-size:14px;">{{.ButtonTxt}}</a>
        </td></tr>
        {{end}}
        <tr><td style="font-size:12px;color:#9ca3af;border-top:1px solid #e5e7eb;padding-top:16px;">
          &copy; {{.Year}} {{.AppName}}
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`
