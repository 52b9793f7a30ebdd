package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailService delivers admin PINs over SMTP, so the PIN never has to ride
// the same response channel the requesting client reads.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	adminEmail := os.Getenv("ADMIN_EMAIL")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" || adminEmail == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = smtpUser
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   from,
		to:     adminEmail,
	}, nil
}

func (s *EmailService) SendPin(phone, pin string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", "KBS Store Admin PIN")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Admin Verification</h2>
        <p>A PIN was requested for phone number <strong>%s</strong>.</p>
        <div style="background-color: #f5f3ff; border: 2px dashed #7c3aed; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px;">
            <span style="font-size: 36px; font-weight: bold; color: #7c3aed; letter-spacing: 8px;">%s</span>
        </div>
        <p>This PIN expires in 5 minutes. Do not share it with anyone.</p>
        <p style="color: #666; font-size: 12px;">If you did not request this, you can ignore this email.</p>
    </div>
</body>
</html>`, phone, pin)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send PIN email: %w", err)
	}

	return nil
}
