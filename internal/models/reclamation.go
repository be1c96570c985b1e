package models

import "time"

// StatutEnAttente is the status assigned to a reclamation that has not
// been picked up by the support team yet.
const StatutEnAttente = "En attente"

// Reclamation represents a customer complaint tied to an order.
// The record is stored in PostgreSQL and keyed by its numeric ID.
type Reclamation struct {
	// ID is the store-assigned identifier. It never changes and is
	// never reused after deletion.
	ID int `gorm:"primaryKey;autoIncrement" json:"id"`
	// Description is the free-text body of the complaint.
	Description string `gorm:"type:text" json:"description"`
	// OrderID references the order the complaint is about. The order
	// itself lives in another service; the value is opaque here.
	OrderID int64 `json:"orderId"`
	// Type is a free-text category ("damage", "delay", ...).
	Type string `json:"type"`
	// EmailClient is the contact address used for notifications.
	EmailClient string `json:"emailClient"`
	// Statut is the current status label, "En attente" by default.
	Statut string `json:"statut"`
	// DateReclamation is set once at creation and never overwritten.
	DateReclamation time.Time `json:"dateReclamation"`
}
