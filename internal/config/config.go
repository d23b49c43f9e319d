package config

import "os"

// Config holds every environment variable the application recognizes.
// Anything else in the environment is ignored.
type Config struct {
	// AdminPassword guards the mutating admin routes. The default is a
	// known-weak development value and must be overridden in production.
	AdminPassword string

	// SecretKey is reserved for cookie-session signing. The current build
	// authenticates per request, so nothing signs with it yet.
	SecretKey string

	DatabasePath string
	UploadDir    string
	Port         string
}

func Load() Config {
	return Config{
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		SecretKey:     getenv("SECRET_KEY", "geheime_sleutel"),
		DatabasePath:  getenv("DATABASE_PATH", "vacatures.db"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		Port:          getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
