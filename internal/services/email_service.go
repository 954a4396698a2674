package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names.
const (
	TplVerifyEmail            = "verifyEmail"
	TplAccountVerified        = "accountVerified"
	TplTwoFactorEmailVerify   = "twoFactorEmailVerify"
	TplTwoFactorEmailVerified = "twoFactorEmailVerified"
	TplPasswordResetRequest   = "passwordResetRequest"
	TplPasswordResetSuccess   = "passwordResetSuccess"
)

var subjects = map[string]string{
	TplVerifyEmail:            "Verify your email",
	TplAccountVerified:        "Account verified",
	TplTwoFactorEmailVerify:   "Verify your two-factor email",
	TplTwoFactorEmailVerified: "Two-factor email verified",
	TplPasswordResetRequest:   "Password reset request",
	TplPasswordResetSuccess:   "Password changed",
}

// EmailSender доставляет уже готовое письмо.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailSender {
	return &smtpSender{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

func (s *smtpSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// dryRunSender только пишет в лог (тело не логируем, там коды).
type dryRunSender struct {
	log logrus.FieldLogger
}

func NewDryRunSender(log logrus.FieldLogger) EmailSender {
	return &dryRunSender{log: log}
}

func (s *dryRunSender) Send(to, subject, htmlBody string) error {
	s.log.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"bytes":   len(htmlBody),
	}).Info("[email][dry-run] message not sent")
	return nil
}

type EmailService interface {
	SendVerificationOTP(to, name string, otp int) error
	SendAccountVerified(to, name string) error
	SendTwoFactorEmailOTP(to, name string, otp int) error
	SendTwoFactorEmailVerified(to, name string) error
	SendPasswordResetOTP(to, name string, otp int) error
	SendPasswordResetSuccess(to, name string) error
}

type emailService struct {
	sender EmailSender
	tmpl   *template.Template
}

type emailData struct {
	Name string
	OTP  int
}

func NewEmailService(sender EmailSender) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &emailService{sender: sender, tmpl: tmpl}, nil
}

func (s *emailService) render(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (s *emailService) send(to, name string, data emailData) error {
	body, err := s.render(name, data)
	if err != nil {
		return err
	}
	return s.sender.Send(to, subjects[name], body)
}

func (s *emailService) SendVerificationOTP(to, name string, otp int) error {
	return s.send(to, TplVerifyEmail, emailData{Name: name, OTP: otp})
}

func (s *emailService) SendAccountVerified(to, name string) error {
	return s.send(to, TplAccountVerified, emailData{Name: name})
}

func (s *emailService) SendTwoFactorEmailOTP(to, name string, otp int) error {
	return s.send(to, TplTwoFactorEmailVerify, emailData{Name: name, OTP: otp})
}

func (s *emailService) SendTwoFactorEmailVerified(to, name string) error {
	return s.send(to, TplTwoFactorEmailVerified, emailData{Name: name})
}

func (s *emailService) SendPasswordResetOTP(to, name string, otp int) error {
	return s.send(to, TplPasswordResetRequest, emailData{Name: name, OTP: otp})
}

func (s *emailService) SendPasswordResetSuccess(to, name string) error {
	return s.send(to, TplPasswordResetSuccess, emailData{Name: name})
}
