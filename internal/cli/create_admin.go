package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/terraincognita07/mariage/internal/db"
	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunCreateAdminCommand promotes an existing account to ADMIN, or creates a
// new admin account after prompting for its password.
func RunCreateAdminCommand(dbPath string, email string, name string, stdin *os.File, out io.Writer) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	users := db.NewUserRepository(database)
	existing, err := users.FindByNormalizedEmail(normalizedEmail)
	switch {
	case err == nil:
		if err := promoteToAdmin(users, existing); err != nil {
			return err
		}
		fmt.Fprintf(out, "User %s is now an administrator.\n", normalizedEmail)
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("load user: %w", err)
	}

	password, err := promptPassword(stdin, out)
	if err != nil {
		return err
	}
	if _, err := createAdmin(users, normalizedEmail, name, password, time.Now().UTC()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Administrator %s created.\n", normalizedEmail)
	return nil
}

func promoteToAdmin(users *db.UserRepository, user models.User) error {
	if user.Role == models.RoleAdmin {
		return nil
	}
	user.Role = models.RoleAdmin
	if err := users.Save(&user); err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	return nil
}

func createAdmin(users *db.UserRepository, email string, name string, password string, now time.Time) (models.User, error) {
	if err := services.ValidatePasswordStrength(password); err != nil {
		return models.User{}, fmt.Errorf("password rejected: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = email
	}
	user := models.User{
		Email:              email,
		PasswordHash:       string(passwordHash),
		Name:               name,
		Role:               models.RoleAdmin,
		SubscriptionStatus: models.SubscriptionNone,
		CreatedAt:          now,
	}
	if err := users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create admin: %w", err)
	}
	return user, nil
}
