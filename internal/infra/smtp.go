package infra

import (
	"fmt"
	"net/smtp"

	"github.com/mohamm188/Trend-phone/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the low-stock alert emails.
// All sends go through the circuit breaker so a dead SMTP host cannot
// stall the worker pool during an alert burst.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
	breaker  *CircuitBreaker
}

func NewMailer(cfg *config.Config, breaker *CircuitBreaker) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		breaker:  breaker,
	}
}

// Send delivers a plain-text email through the breaker.
func (m *Mailer) Send(to, subject, body string) error {
	return m.breaker.Execute(func() error {
		e := email.NewEmail()
		e.From = m.user
		e.To = []string{to}
		e.Subject = subject
		e.Text = []byte(body)

		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		return e.Send(m.addr, auth)
	})
}

// BreakerState exposes the breaker state for the health endpoint.
func (m *Mailer) BreakerState() string { return m.breaker.State().String() }
