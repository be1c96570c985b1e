// Package reclamation provides the core logic for handling customer
// reclamations: creation with default values, updates, deletion and
// queries, plus the fire-and-forget client notification hook.
package reclamation

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"reclamations/backend/internal/models"
	"reclamations/backend/internal/notify"
	"reclamations/backend/internal/storage"
)

// ErrNotFound is returned when an operation targets an id that is not
// in the store.
var ErrNotFound = errors.New("reclamation not found")

// Service handles the business logic for reclamations. It is the only
// component that writes records; the QR and PDF generators read through
// it.
type Service struct {
	Storage storage.Store
	Log     *zap.Logger

	// NotifyOnCreate queues a confirmation email to the client as part
	// of Add. It is off by default; delivery outcome never influences
	// the result of Add either way.
	NotifyOnCreate bool
}

// NewService creates a new reclamation service.
func NewService(s storage.Store, log *zap.Logger) *Service {
	return &Service{Storage: s, Log: log}
}

// Add persists a new reclamation. A missing statut defaults to
// "En attente" and a missing date to the current time; an explicit
// value for either is kept as-is.
func (s *Service) Add(rec *models.Reclamation) (*models.Reclamation, error) {
	if rec.Statut == "" {
		rec.Statut = models.StatutEnAttente
	}
	if rec.DateReclamation.IsZero() {
		rec.DateReclamation = time.Now()
	}
	if err := s.Storage.SaveReclamation(rec); err != nil {
		return nil, err
	}
	if s.NotifyOnCreate {
		s.NotifyClient(rec)
	}
	return rec, nil
}

// Update replaces the mutable fields of an existing record. The id and
// the creation date are never touched. Returns ErrNotFound when the id
// is unknown.
func (s *Service) Update(id int, in *models.Reclamation) (*models.Reclamation, error) {
	existing, err := s.Storage.FindReclamationByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Description = in.Description
	existing.OrderID = in.OrderID
	existing.Type = in.Type
	existing.EmailClient = in.EmailClient
	existing.Statut = in.Statut

	if err := s.Storage.SaveReclamation(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the record with the given id, or returns ErrNotFound
// when it does not exist.
func (s *Service) Delete(id int) error {
	exists, err := s.Storage.ReclamationExists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.Storage.DeleteReclamationByID(id)
}

// GetAll returns every stored reclamation in creation order.
func (s *Service) GetAll() ([]models.Reclamation, error) {
	return s.Storage.FindAllReclamations()
}

// GetByID returns the record and true when it exists, or the zero
// value and false when it does not. Absence is not an error.
func (s *Service) GetByID(id int) (models.Reclamation, bool, error) {
	rec, err := s.Storage.FindReclamationByID(id)
	if err != nil {
		return models.Reclamation{}, false, err
	}
	if rec == nil {
		return models.Reclamation{}, false, nil
	}
	return *rec, true, nil
}

// NotifyClient queues a confirmation message for the client. Best
// effort: a queue failure is logged and dropped so the triggering
// operation never sees it.
func (s *Service) NotifyClient(rec *models.Reclamation) {
	n := notify.BuildReclamationEmail(rec)
	if err := s.Storage.EnqueueNotification(n); err != nil {
		s.Log.Warn("failed to queue reclamation notification",
			zap.Int("reclamation_id", rec.ID),
			zap.String("to", rec.EmailClient),
			zap.Error(err))
	}
}
