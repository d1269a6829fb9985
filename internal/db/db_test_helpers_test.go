package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "mariage-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string, name string) models.User {
	t.Helper()

	user := models.User{
		Email:              email,
		PasswordHash:       "hash",
		Name:               name,
		Role:               models.RoleClient,
		SubscriptionStatus: models.SubscriptionNone,
		CreatedAt:          time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestCouple(t *testing.T, database *gorm.DB, brideID *uint, groomID *uint) models.Couple {
	t.Helper()

	couple := models.Couple{BrideID: brideID, GroomID: groomID, Status: models.CoupleStatusPlanning}
	if err := NewCoupleRepository(database).Create(&couple); err != nil {
		t.Fatalf("create couple: %v", err)
	}
	return couple
}
