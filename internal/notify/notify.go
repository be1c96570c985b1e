// Package notify delivers queued notifications to clients and to the
// support team. Delivery is best effort end to end: every error on
// this path is logged and dropped, nothing propagates back to the
// operation that produced the message.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"reclamations/backend/internal/models"
)

// Sender delivers a single notification.
type Sender interface {
	Send(n models.Notification) error
}

// BuildReclamationEmail composes the confirmation message sent to the
// client after their reclamation is recorded.
func BuildReclamationEmail(rec *models.Reclamation) models.Notification {
	body := fmt.Sprintf(
		"<h3>Bonjour,</h3>"+
			"<p>Nous avons bien reçu votre réclamation concernant: <strong>%s</strong>.</p>"+
			"<p>ID de la réclamation: %d</p>"+
			"<p>Description: %s</p>"+
			"<p>Date de la réclamation: %s</p>"+
			"<p>ID de la commande: %d</p>"+
			"<p>Statut actuel: %s</p>"+
			"<br><p>Merci pour votre retour.</p><p>Service Client</p>",
		rec.Type, rec.ID, rec.Description,
		rec.DateReclamation.Format(time.RFC1123),
		rec.OrderID, rec.Statut)

	return models.Notification{
		ID:        uuid.New().String(),
		To:        rec.EmailClient,
		Subject:   "Confirmation de votre réclamation",
		Body:      body,
		CreatedAt: time.Now(),
	}
}
