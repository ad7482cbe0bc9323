package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"time"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// DefaultConfig reads SMTP settings from the environment.
func DefaultConfig() *Config {
	return &Config{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnv("SMTP_PORT", "587"),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "noreply@techclub.example"),
		FromName: getEnv("SMTP_FROM_NAME", "Tech Club"),
	}
}

// EmailService sends transactional mail. Without SMTP credentials it runs in
// dev mode and only logs what it would have sent.
type EmailService struct {
	config  *Config
	devMode bool
}

// NewEmailService creates an email service from config (nil = env defaults).
func NewEmailService(config *Config) *EmailService {
	if config == nil {
		config = DefaultConfig()
	}
	devMode := config.Username == "" || config.Password == ""
	return &EmailService{config: config, devMode: devMode}
}

// RegistrationEmailData feeds the confirmation template.
type RegistrationEmailData struct {
	To             string
	Name           string
	RegistrationNo string
	EventTitle     string
	EventDate      time.Time
	EventLocation  string
	TeamName       string
	QRCodeDataURI  string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Registration Confirmed</h2>
  <p>Hi {{.Name}},</p>
  <p>You are registered for <strong>{{.EventTitle}}</strong>.</p>
  <ul>
    <li>Registration No: {{.RegistrationNo}}</li>
    {{if not .EventDate.IsZero}}<li>Date: {{.EventDate.Format "02 Jan 2006"}}</li>{{end}}
    {{if .EventLocation}}<li>Location: {{.EventLocation}}</li>{{end}}
    {{if .TeamName}}<li>Team: {{.TeamName}}</li>{{end}}
  </ul>
  {{if .QRCodeDataURI}}<p>Show this code at check-in:</p><img src="{{.QRCodeDataURI}}" alt="QR" width="200" height="200" />{{end}}
  <p>See you there!</p>
</body>
</html>`))

// SendRegistrationConfirmation sends the event registration confirmation.
// Failures are the caller's to log; registration itself never depends on it.
func (s *EmailService) SendRegistrationConfirmation(data RegistrationEmailData) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Registration confirmed: %s", data.EventTitle)
	if s.devMode {
		log.Printf("[EMAIL] dev mode, skipping send to=%s subject=%q", data.To, subject)
		return nil
	}

	msg := buildMessage(s.config, data.To, subject, body.String())
	addr := s.config.Host + ":" + s.config.Port
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.From, []string{data.To}, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

func buildMessage(cfg *Config, to, subject, htmlBody string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s <%s>\r\n", cfg.FromName, cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return b.Bytes()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
