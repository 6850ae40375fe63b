package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr       string
	GinMode       string
	TemplateGlob  string
	SessionSecret string
	SessionTTL    time.Duration
	MigrationsURL string
}

func LoadEnv() Env {
	if strings.TrimSpace(os.Getenv("ENV")) == "dev" {
		_ = godotenv.Load()
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	templateGlob := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB"))
	if templateGlob == "" {
		templateGlob = "web/templates/*.html"
	}

	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	migrationsURL := strings.TrimSpace(os.Getenv("MIGRATIONS_URL"))
	if migrationsURL == "" {
		migrationsURL = "file://internal/db/migrations"
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		TemplateGlob:  templateGlob,
		SessionSecret: secret,
		SessionTTL:    24 * time.Hour,
		MigrationsURL: migrationsURL,
	}
}
