package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/mariage/internal/db"
	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/security"
	"github.com/terraincognita07/mariage/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordSatisfiesPolicy(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(12)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	for _, char := range password {
		if !strings.ContainsRune(security.PasswordAlphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		t.Fatalf("temporary password %q fails the password policy: %v", password, err)
	}
}

func TestRunResetPasswordCommandStoresTemporaryPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mariage.db")
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	users := db.NewUserRepository(database)
	user := models.User{Email: "claire@example.com", PasswordHash: "old", Role: models.RoleClient, CreatedAt: time.Now().UTC()}
	if err := users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	closeDatabase(database)

	var out bytes.Buffer
	if err := RunResetPasswordCommand(dbPath, " CLAIRE@example.com ", &out); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	line := ""
	for _, candidate := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(candidate, "Temporary password: ") {
			line = strings.TrimPrefix(candidate, "Temporary password: ")
		}
	}
	if line == "" {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}

	database, err = db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer closeDatabase(database)
	stored, err := db.NewUserRepository(database).FindByID(user.ID)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !stored.MustChangePassword {
		t.Fatal("expected user to be forced to change password")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(line)) != nil {
		t.Fatal("stored hash does not match printed temporary password")
	}
}

func TestRunResetPasswordCommandRejectsUnknownUser(t *testing.T) {
	var out bytes.Buffer
	if err := RunResetPasswordCommand(filepath.Join(t.TempDir(), "mariage.db"), "nobody@example.com", &out); err == nil {
		t.Fatal("expected error for unknown user")
	}
	if err := RunResetPasswordCommand(filepath.Join(t.TempDir(), "mariage.db"), "not-an-email", &out); err == nil {
		t.Fatal("expected error for invalid email")
	}
}

func TestCreateAdminAndPromote(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "mariage.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer closeDatabase(database)
	users := db.NewUserRepository(database)

	if _, err := createAdmin(users, "admin@example.com", "", "weak", time.Now()); !errors.Is(err, services.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	admin, err := createAdmin(users, "admin@example.com", "", "Admin2026!", time.Now())
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if admin.Role != models.RoleAdmin || admin.Name != "admin@example.com" {
		t.Fatalf("unexpected admin %#v", admin)
	}

	client := models.User{Email: "planner@example.com", PasswordHash: "hash", Role: models.RolePlanner, CreatedAt: time.Now()}
	if err := users.Create(&client); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := promoteToAdmin(users, client); err != nil {
		t.Fatalf("promote: %v", err)
	}
	promoted, err := users.FindByID(client.ID)
	if err != nil {
		t.Fatalf("load promoted user: %v", err)
	}
	if promoted.Role != models.RoleAdmin {
		t.Fatalf("expected ADMIN role, got %s", promoted.Role)
	}
}
