package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	DB         *sql.DB
	DBPath     string
	ListenAddr string
	Username   string
	Password   string
	JWTSecret  string
}

var AppConfig *Config

// Load reads the optional .env file and assembles the runtime configuration.
// Missing keys fall back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment and defaults")
	}

	AppConfig = &Config{
		DBPath:     getEnv("WIO_DB_PATH", "wio_data.db"),
		ListenAddr: getEnv("WIO_LISTEN_ADDR", ":8080"),
		Username:   getEnv("WIO_USERNAME", "admin"),
		Password:   getEnv("WIO_PASSWORD", "admin"),
		JWTSecret:  getEnv("WIO_JWT_SECRET", "wio-calculator-secret-key"),
	}
	return AppConfig
}

// InitDB opens the SQLite database and applies connection pragmas. The
// database file is created on first use.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	db, err := sql.Open("sqlite3", AppConfig.DBPath+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", AppConfig.DBPath, err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database %s: %v", AppConfig.DBPath, err)
	}

	// SQLite allows a single writer; keeping one connection avoids
	// SQLITE_BUSY churn under the WAL.
	db.SetMaxOpenConns(1)

	AppConfig.DB = db
	log.Printf("Connected to SQLite database at %s", AppConfig.DBPath)
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
