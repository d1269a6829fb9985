package services

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/mariage/internal/db"
	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/gorm"
)

type memoryFileStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	counter int
}

func newMemoryFileStore() *memoryFileStore {
	return &memoryFileStore{files: make(map[string][]byte)}
}

func (store *memoryFileStore) Save(coupleID uint, extension string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.counter++
	path := fmt.Sprintf("/uploads/documents/%d/file-%d%s", coupleID, store.counter, extension)
	store.files[path] = data
	return path, nil
}

func (store *memoryFileStore) Remove(fileURL string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.files, fileURL)
	return nil
}

func (store *memoryFileStore) count() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.files)
}

type serviceFixture struct {
	database *gorm.DB
	repos    *db.Repositories
	services *Services
	files    *memoryFileStore
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "services-test.db"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	files := newMemoryFileStore()
	return serviceFixture{
		database: database,
		repos:    repos,
		services: NewServices(repos, files, models.DefaultTrialDays),
		files:    files,
	}
}

func (fixture serviceFixture) createUser(t *testing.T, email string, role string) models.User {
	t.Helper()

	user := models.User{
		Email:              email,
		PasswordHash:       "hash",
		Name:               email,
		Role:               role,
		SubscriptionStatus: models.SubscriptionNone,
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, fixture.repos.Users.Create(&user))
	return user
}

func (fixture serviceFixture) createCouple(t *testing.T, bride models.User, groom *models.User) models.Couple {
	t.Helper()

	couple := models.Couple{BrideID: &bride.ID, Status: models.CoupleStatusPlanning}
	if groom != nil {
		couple.GroomID = &groom.ID
	}
	require.NoError(t, fixture.repos.Couples.CreateForMembers(&couple))
	return couple
}

func stringPtr(value string) *string {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func uintPtr(value uint) *uint {
	return &value
}

func fileContent(text string) io.Reader {
	return bytes.NewBufferString(text)
}
