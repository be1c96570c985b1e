package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reclamations/backend/internal/models"
	"reclamations/backend/internal/storage"
)

// newTestStore runs the record methods against an in-memory SQLite
// database. The queue methods need Redis and are not covered here.
func newTestStore(t *testing.T) *storage.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second pool connection would see its own empty :memory: db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Reclamation{}))
	return storage.NewService(db, nil, zap.NewNop())
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)

	first := &models.Reclamation{Description: "broken item", Statut: models.StatutEnAttente, DateReclamation: time.Now()}
	second := &models.Reclamation{Description: "late delivery", Statut: models.StatutEnAttente, DateReclamation: time.Now()}

	require.NoError(t, store.SaveReclamation(first))
	require.NoError(t, store.SaveReclamation(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestFindByIDAbsentIsNilNil(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.FindReclamationByID(12)
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveUpdatesInPlace(t *testing.T) {
	store := newTestStore(t)

	rec := &models.Reclamation{Description: "broken item", Statut: models.StatutEnAttente, DateReclamation: time.Now()}
	require.NoError(t, store.SaveReclamation(rec))

	rec.Statut = "Resolue"
	require.NoError(t, store.SaveReclamation(rec))

	got, err := store.FindReclamationByID(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Resolue", got.Statut)

	all, err := store.FindAllReclamations()
	require.NoError(t, err)
	assert.Len(t, all, 1, "update must not create a second record")
}

func TestFindAllReturnsCreationOrder(t *testing.T) {
	store := newTestStore(t)

	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, store.SaveReclamation(&models.Reclamation{
			Description: desc, Statut: models.StatutEnAttente, DateReclamation: time.Now(),
		}))
	}

	all, err := store.FindAllReclamations()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestExistsAndDelete(t *testing.T) {
	store := newTestStore(t)

	rec := &models.Reclamation{Description: "scratched", Statut: models.StatutEnAttente, DateReclamation: time.Now()}
	require.NoError(t, store.SaveReclamation(rec))

	exists, err := store.ReclamationExists(rec.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.DeleteReclamationByID(rec.ID))

	exists, err = store.ReclamationExists(rec.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := store.FindReclamationByID(rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	store := newTestStore(t)

	first := &models.Reclamation{Description: "first", Statut: models.StatutEnAttente, DateReclamation: time.Now()}
	require.NoError(t, store.SaveReclamation(first))
	require.NoError(t, store.DeleteReclamationByID(first.ID))

	second := &models.Reclamation{Description: "second", Statut: models.StatutEnAttente, DateReclamation: time.Now()}
	require.NoError(t, store.SaveReclamation(second))

	assert.Greater(t, second.ID, first.ID)
}
