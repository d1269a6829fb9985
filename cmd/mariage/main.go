package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/mariage/internal/api"
	"github.com/terraincognita07/mariage/internal/cli"
	"github.com/terraincognita07/mariage/internal/config"
	"github.com/terraincognita07/mariage/internal/db"
	"github.com/terraincognita07/mariage/internal/i18n"
	"github.com/terraincognita07/mariage/internal/mail"
	"github.com/terraincognita07/mariage/internal/services"
	"github.com/terraincognita07/mariage/internal/storage"
)

const envFile = ".env"

// Multipart uploads carry up to 10 MiB of file plus form overhead.
const requestBodyLimit = 12 << 20

var errUsage = errors.New("usage: mariage [serve | reset-password <email> | create-admin <email> <name>]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin *os.File, out io.Writer) error {
	command := "serve"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "serve":
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		return serve(cfg)
	case "reset-password":
		if len(args) != 2 {
			return errUsage
		}
		cfg, err := config.Read(envFile)
		if err != nil {
			return err
		}
		return cli.RunResetPasswordCommand(cfg.DBPath, args[1], out)
	case "create-admin":
		if len(args) < 2 {
			return errUsage
		}
		cfg, err := config.Read(envFile)
		if err != nil {
			return err
		}
		return cli.RunCreateAdminCommand(cfg.DBPath, args[1], strings.Join(args[2:], " "), stdin, out)
	default:
		return errUsage
	}
}

func serve(cfg config.Config) error {
	location := cfg.Location()
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("upload store init failed: %w", err)
	}

	mailer := mail.NewMailer(mail.SMTPSettings{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}, i18nManager)
	if !mailer.Enabled() {
		log.Printf("SMTP_HOST is empty, outgoing mail will only be logged")
	}

	serviceSet := services.NewServices(db.NewRepositories(database), files, cfg.TrialDays)
	handler, err := api.NewHandler(serviceSet, i18nManager, mailer, cfg.SecretKey, location, cfg.CookieSecure, cfg.TrialDays)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, files.Root(), cfg.CookieSecure)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Mariage listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func newApp(handler *api.Handler, uploadDir string, cookieSecure bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Mariage",
		DisableStartupMessage: true,
		BodyLimit:             requestBodyLimit,
		ErrorHandler:          handler.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure, handler.CSRFError)))

	app.Static(storage.PublicPrefix, uploadDir)
	handler.RegisterRoutes(app)
	return app
}

// csrfMiddlewareConfig protects cookie sessions only. Bearer requests and
// requests without a session cookie carry no ambient credentials, so they
// skip the check and reach AuthRequired, which answers 401 when needed.
func csrfMiddlewareConfig(cookieSecure bool, onError fiber.ErrorHandler) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:X-CSRF-Token",
		CookieName:     "mariage_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		ErrorHandler:   onError,
		Next: func(c *fiber.Ctx) bool {
			if strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ") {
				return true
			}
			return c.Cookies(api.AuthCookieName) == ""
		},
	}
}
