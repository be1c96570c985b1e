package reclamation_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"reclamations/backend/internal/models"
)

// MockStore is a testify/mock implementation of the storage.Store
// interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveReclamation(rec *models.Reclamation) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockStore) FindReclamationByID(id int) (*models.Reclamation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reclamation), args.Error(1)
}

func (m *MockStore) FindAllReclamations() ([]models.Reclamation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reclamation), args.Error(1)
}

func (m *MockStore) ReclamationExists(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) DeleteReclamationByID(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) EnqueueNotification(n models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockStore) NextNotification(ctx context.Context, timeout time.Duration) (*models.Notification, error) {
	args := m.Called(ctx, timeout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}
