package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"reclamations/backend/internal/models"
)

// notificationQueueKey is the Redis list holding pending notifications.
const notificationQueueKey = "notification_queue"

// Store is the persistence contract for reclamation records and the
// outbound notification queue. Records live in PostgreSQL, the queue
// in Redis. Save/find/delete are atomic per record at the database
// level; concurrent writers on the same id race last-write-wins, this
// layer adds no locking of its own.
type Store interface {
	SaveReclamation(rec *models.Reclamation) error
	FindReclamationByID(id int) (*models.Reclamation, error)
	FindAllReclamations() ([]models.Reclamation, error)
	ReclamationExists(id int) (bool, error)
	DeleteReclamationByID(id int) error

	EnqueueNotification(n models.Notification) error
	NextNotification(ctx context.Context, timeout time.Duration) (*models.Notification, error)
}

// Service implements Store on top of gorm and go-redis.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Log   *zap.Logger
}

// NewService Constructor
func NewService(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Log:   log,
	}
}

// SaveReclamation inserts the record or updates it in place when the
// primary key is already set.
func (s *Service) SaveReclamation(rec *models.Reclamation) error {
	if err := s.DB.Save(rec).Error; err != nil {
		s.Log.Error("failed to save reclamation", zap.Int("id", rec.ID), zap.Error(err))
		return err
	}
	return nil
}

// FindReclamationByID returns nil without an error when no record
// exists for the given id.
func (s *Service) FindReclamationByID(id int) (*models.Reclamation, error) {
	var rec models.Reclamation
	err := s.DB.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.Log.Error("failed to find reclamation", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

// FindAllReclamations returns every record ordered by id, i.e. in
// creation order.
func (s *Service) FindAllReclamations() ([]models.Reclamation, error) {
	var recs []models.Reclamation
	if err := s.DB.Order("id asc").Find(&recs).Error; err != nil {
		s.Log.Error("failed to list reclamations", zap.Error(err))
		return nil, err
	}
	return recs, nil
}

// ReclamationExists reports whether a record with the given id is stored.
func (s *Service) ReclamationExists(id int) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Reclamation{}).Where("id = ?", id).Count(&count).Error; err != nil {
		s.Log.Error("failed to check reclamation existence", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// DeleteReclamationByID removes the record. Deleting an id that is
// already gone is not an error here; the service layer performs the
// existence check that turns it into NotFound.
func (s *Service) DeleteReclamationByID(id int) error {
	if err := s.DB.Delete(&models.Reclamation{}, id).Error; err != nil {
		s.Log.Error("failed to delete reclamation", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// EnqueueNotification pushes the message onto the Redis queue as JSON.
func (s *Service) EnqueueNotification(n models.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := s.Redis.LPush(context.Background(), notificationQueueKey, payload).Err(); err != nil {
		s.Log.Error("failed to enqueue notification", zap.String("to", n.To), zap.Error(err))
		return err
	}
	return nil
}

// NextNotification blocks up to timeout for the next queued message.
// It returns nil without an error when the queue stayed empty.
func (s *Service) NextNotification(ctx context.Context, timeout time.Duration) (*models.Notification, error) {
	vals, err := s.Redis.BRPop(ctx, timeout, notificationQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// BRPop returns [key, value].
	var n models.Notification
	if err := json.Unmarshal([]byte(vals[1]), &n); err != nil {
		s.Log.Error("dropping malformed notification payload", zap.Error(err))
		return nil, nil
	}
	return &n, nil
}
