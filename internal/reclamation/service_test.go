package reclamation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reclamations/backend/internal/models"
	"reclamations/backend/internal/reclamation"
)

func newTestService(store *MockStore) *reclamation.Service {
	return reclamation.NewService(store, zap.NewNop())
}

// TestAddAppliesDefaults verifies that a new reclamation without a
// statut or date receives "En attente" and the creation instant.
func TestAddAppliesDefaults(t *testing.T) {
	store := new(MockStore)
	store.On("SaveReclamation", mock.AnythingOfType("*models.Reclamation")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Reclamation).ID = 1 // store assigns the id
		}).Return(nil).Once()

	svc := newTestService(store)
	created, err := svc.Add(&models.Reclamation{
		Description: "broken item",
		OrderID:     42,
		Type:        "damage",
		EmailClient: "a@b.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.StatutEnAttente, created.Statut)
	assert.False(t, created.DateReclamation.IsZero())
	assert.WithinDuration(t, time.Now(), created.DateReclamation, 2*time.Second)
	store.AssertExpectations(t)
}

// TestAddPreservesExplicitValues verifies that a caller-supplied
// statut and date survive creation unchanged.
func TestAddPreservesExplicitValues(t *testing.T) {
	store := new(MockStore)
	store.On("SaveReclamation", mock.Anything).Return(nil).Once()

	date := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	svc := newTestService(store)
	created, err := svc.Add(&models.Reclamation{
		Description:     "late delivery",
		OrderID:         7,
		Type:            "delay",
		EmailClient:     "c@d.com",
		Statut:          "Resolue",
		DateReclamation: date,
	})

	require.NoError(t, err)
	assert.Equal(t, "Resolue", created.Statut)
	assert.Equal(t, date, created.DateReclamation)
}

// TestAddPropagatesStorageError verifies a save failure reaches the
// caller untouched.
func TestAddPropagatesStorageError(t *testing.T) {
	store := new(MockStore)
	storeErr := errors.New("connection refused")
	store.On("SaveReclamation", mock.Anything).Return(storeErr).Once()

	svc := newTestService(store)
	_, err := svc.Add(&models.Reclamation{Description: "x"})

	assert.ErrorIs(t, err, storeErr)
}

// TestAddNotifyOnCreate verifies the confirmation is queued when the
// policy is on, and that a queue failure never fails the create.
func TestAddNotifyOnCreate(t *testing.T) {
	store := new(MockStore)
	store.On("SaveReclamation", mock.Anything).Return(nil).Once()
	store.On("EnqueueNotification", mock.AnythingOfType("models.Notification")).
		Return(errors.New("redis down")).Once()

	svc := newTestService(store)
	svc.NotifyOnCreate = true

	created, err := svc.Add(&models.Reclamation{
		Description: "broken item",
		EmailClient: "a@b.com",
	})

	require.NoError(t, err, "a failed notification must never fail the create")
	assert.NotNil(t, created)
	store.AssertExpectations(t)
}

// TestAddDoesNotNotifyByDefault verifies the queue stays untouched
// when the policy is off.
func TestAddDoesNotNotifyByDefault(t *testing.T) {
	store := new(MockStore)
	store.On("SaveReclamation", mock.Anything).Return(nil).Once()

	svc := newTestService(store)
	_, err := svc.Add(&models.Reclamation{Description: "x"})

	require.NoError(t, err)
	store.AssertNotCalled(t, "EnqueueNotification", mock.Anything)
}

// TestUpdateUnknownID verifies ErrNotFound and that nothing is written.
func TestUpdateUnknownID(t *testing.T) {
	store := new(MockStore)
	store.On("FindReclamationByID", 99).Return(nil, nil).Once()

	svc := newTestService(store)
	_, err := svc.Update(99, &models.Reclamation{Description: "y"})

	assert.ErrorIs(t, err, reclamation.ErrNotFound)
	store.AssertNotCalled(t, "SaveReclamation", mock.Anything)
}

// TestUpdateReplacesMutableFields verifies the five mutable fields are
// replaced while the id and creation date stay untouched.
func TestUpdateReplacesMutableFields(t *testing.T) {
	date := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	existing := &models.Reclamation{
		ID:              1,
		Description:     "broken item",
		OrderID:         42,
		Type:            "damage",
		EmailClient:     "a@b.com",
		Statut:          models.StatutEnAttente,
		DateReclamation: date,
	}

	store := new(MockStore)
	store.On("FindReclamationByID", 1).Return(existing, nil).Once()
	store.On("SaveReclamation", mock.Anything).Return(nil).Once()

	svc := newTestService(store)
	updated, err := svc.Update(1, &models.Reclamation{
		Description: "broken item - resolved",
		OrderID:     42,
		Type:        "damage",
		EmailClient: "a@b.com",
		Statut:      "Resolue",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, date, updated.DateReclamation, "update must not touch the creation date")
	assert.Equal(t, "broken item - resolved", updated.Description)
	assert.Equal(t, "Resolue", updated.Statut)
	store.AssertExpectations(t)
}

// TestDeleteUnknownID verifies ErrNotFound without a delete call.
func TestDeleteUnknownID(t *testing.T) {
	store := new(MockStore)
	store.On("ReclamationExists", 5).Return(false, nil).Once()

	svc := newTestService(store)
	err := svc.Delete(5)

	assert.ErrorIs(t, err, reclamation.ErrNotFound)
	store.AssertNotCalled(t, "DeleteReclamationByID", mock.Anything)
}

// TestDeleteExisting verifies the happy path.
func TestDeleteExisting(t *testing.T) {
	store := new(MockStore)
	store.On("ReclamationExists", 1).Return(true, nil).Once()
	store.On("DeleteReclamationByID", 1).Return(nil).Once()

	svc := newTestService(store)
	assert.NoError(t, svc.Delete(1))
	store.AssertExpectations(t)
}

// TestGetByIDAbsent verifies absence is reported comma-ok, not as an
// error.
func TestGetByIDAbsent(t *testing.T) {
	store := new(MockStore)
	store.On("FindReclamationByID", 3).Return(nil, nil).Once()

	svc := newTestService(store)
	_, found, err := svc.GetByID(3)

	assert.NoError(t, err)
	assert.False(t, found)
}

// TestGetByIDPresent verifies the record comes back by value.
func TestGetByIDPresent(t *testing.T) {
	store := new(MockStore)
	store.On("FindReclamationByID", 3).
		Return(&models.Reclamation{ID: 3, Description: "scratched"}, nil).Once()

	svc := newTestService(store)
	rec, found, err := svc.GetByID(3)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, rec.ID)
	assert.Equal(t, "scratched", rec.Description)
}

// TestGetAll verifies the list passes through from the store.
func TestGetAll(t *testing.T) {
	recs := []models.Reclamation{{ID: 1}, {ID: 2}}
	store := new(MockStore)
	store.On("FindAllReclamations").Return(recs, nil).Once()

	svc := newTestService(store)
	got, err := svc.GetAll()

	require.NoError(t, err)
	assert.Equal(t, recs, got)
}
