package models

import "time"

// Notification is an outbound message queued for best-effort delivery.
// It carries everything a sender needs; delivery failures are logged
// and dropped, they never reach the operation that produced the message.
type Notification struct {
	// ID is a UUID assigned when the message is composed.
	ID string `json:"id"`
	// To is the recipient address (email for the mailer sink).
	To string `json:"to"`
	// Subject is the message subject line.
	Subject string `json:"subject"`
	// Body is the HTML body of the message.
	Body string `json:"body"`
	// CreatedAt is when the message was composed.
	CreatedAt time.Time `json:"createdAt"`
}
