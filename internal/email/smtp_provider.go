package email

import (
	"fmt"

	"hiringbooth/internal/auth"
	"hiringbooth/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.Config
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Email.SMTPPort)
	}
	return &SMTPProvider{cfg: cfg}, nil
}

// Send отправляет HTML-письмо
func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendOTP отправляет код подтверждения email
func (p *SMTPProvider) SendOTP(to, code string) error {
	body, err := renderTemplate(otpTemplate, map[string]any{
		"Code":       code,
		"TTLMinutes": int(auth.OTPTTL.Minutes()),
	})
	if err != nil {
		return err
	}
	return p.Send(to, "Your HiringBooth verification code", body)
}

// SendEmployerDecision уведомляет работодателя о решении администратора
func (p *SMTPProvider) SendEmployerDecision(to string, approved bool, reason string) error {
	if approved {
		body, err := renderTemplate(approvedTemplate, nil)
		if err != nil {
			return err
		}
		return p.Send(to, "Your employer account is approved", body)
	}

	body, err := renderTemplate(rejectedTemplate, map[string]any{"Reason": reason})
	if err != nil {
		return err
	}
	return p.Send(to, "Your employer account review", body)
}
