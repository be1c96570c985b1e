package notify

import (
	gomail "gopkg.in/gomail.v2"

	"reclamations/backend/internal/models"
)

// Mailer sends notifications over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates an SMTP sender. The dialer connects lazily, on the
// first Send.
func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message. The body is HTML.
func (m *Mailer) Send(n models.Notification) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/html", n.Body)
	return m.dialer.DialAndSend(msg)
}
