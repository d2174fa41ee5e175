package config

import (
	"log"
	"os"
)

type Config struct {
	Port          string
	DBDSN         string
	MediaDir      string
	LogFile       string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "touchandglow.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./touchandglow.log"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@touchandglow.test"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "Glow@2024!"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile,
		AdminEmail: adminEmail, AdminPassword: adminPass}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s ADMIN_EMAIL=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.AdminEmail)
	return cfg
}
