package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/db"
	"github.com/terraincognita07/mariage/internal/i18n"
	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/services"
	"github.com/terraincognita07/mariage/internal/storage"
	"gorm.io/gorm"
)

const testPassword = "Bouquet2026"

type testEnv struct {
	app       *fiber.App
	database  *gorm.DB
	handler   *Handler
	uploadDir string
}

func newTestApp(t *testing.T) testEnv {
	t.Helper()
	return newTestAppWithMailer(t, nil)
}

func newTestAppWithMailer(t *testing.T, mailer WelcomeMailer) testEnv {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mariage-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	files, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		t.Fatalf("init upload store: %v", err)
	}

	i18nManager, err := i18n.NewEmbeddedManager(i18n.LangFR)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	serviceSet := services.NewServices(db.NewRepositories(database), files, models.DefaultTrialDays)
	handler, err := NewHandler(serviceSet, i18nManager, mailer, "test-secret-key-with-enough-length!!", time.UTC, false, models.DefaultTrialDays)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	app.Static(storage.PublicPrefix, uploadDir)
	handler.RegisterRoutes(app)

	return testEnv{app: app, database: database, handler: handler, uploadDir: uploadDir}
}

func (env testEnv) do(t *testing.T, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return env.send(t, request)
}

func (env testEnv) send(t *testing.T, request *http.Request) *http.Response {
	t.Helper()

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

// register creates an account over HTTP and returns the session cookie
// ready for a Cookie header.
func (env testEnv) register(t *testing.T, email string, name string) string {
	t.Helper()

	response := env.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"password": testPassword,
		"name":     name,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	cookie := responseCookie(response.Cookies(), AuthCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("auth cookie is missing in register response")
	}
	return AuthCookieName + "=" + cookie.Value
}

func (env testEnv) createCouple(t *testing.T, authCookie string, partnerEmail string) models.Couple {
	t.Helper()

	response := env.do(t, http.MethodPost, "/api/couple", authCookie, fiber.Map{
		"role":         services.CoupleRoleBride,
		"partnerEmail": partnerEmail,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected couple status 201, got %d", response.StatusCode)
	}
	couple := models.Couple{}
	decodeJSON(t, response, &couple)
	return couple
}

func (env testEnv) updateUser(t *testing.T, email string, column string, value any) {
	t.Helper()
	if err := env.database.Model(&models.User{}).Where("email = ?", email).Update(column, value).Error; err != nil {
		t.Fatalf("update user %s: %v", column, err)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]any{}
	decodeJSON(t, response, &payload)
	message, _ := payload["error"].(string)
	return message
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(raw))
	}
}
