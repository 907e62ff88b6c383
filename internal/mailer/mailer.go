package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
	"github.com/campuslib/circulation/pkg/breaker"
)

type Config struct {
	Host     string `yaml:"host" envconfig:"SMTP_HOST" default:"localhost"`
	Port     string `yaml:"port" envconfig:"SMTP_PORT" default:"25"`
	From     string `yaml:"from" envconfig:"SMTP_FROM" default:"library@example.com"`
	Username string `yaml:"username" envconfig:"SMTP_USER"`
	Password string `yaml:"password" envconfig:"SMTP_PASSWORD" json:"-"`
}

// Mailer sends reminder emails over SMTP behind a circuit breaker so a dead
// mail relay does not hold up the consumer.
type Mailer struct {
	cfg Config
	cb  breaker.CircuitBreaker
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{
		cfg: cfg,
		cb:  breaker.New(20, 30*time.Second, 0.5, 5),
		log: log.Named("mailer"),
	}
}

func (m *Mailer) SendReminder(_ context.Context, msg model.ReminderMsg) error {
	var subject, body string
	switch msg.Kind {
	case model.ReminderOverdue:
		subject = "Overdue Book Alert"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour borrowed book '%s' was due on %s and is now overdue.\n"+
				"Please return it as soon as possible to avoid more fines.\n\n"+
				"Thank you,\nLibrary Management System",
			msg.Username, msg.Title, msg.DueDate.Format(time.DateOnly))
	default:
		subject = "Reminder: Book Due Tomorrow"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour borrowed book '%s' is due tomorrow (%s).\n"+
				"Please return it on time to avoid any fine.\n\n"+
				"Thank you,\nLibrary Management System",
			msg.Username, msg.Title, msg.DueDate.Format(time.DateOnly))
	}

	return m.cb.Call(func() error {
		return m.send(msg.Email, subject, body)
	})
}

func (m *Mailer) send(to, subject, body string) error {
	payload := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		to, m.cfg.From, subject, body))

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	var a smtp.Auth
	if m.cfg.Username != "" {
		a = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, a, m.cfg.From, []string{to}, payload)
}
