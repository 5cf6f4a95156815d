package configuration

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

// Config carries every process-wide setting read at startup. Handlers and
// services receive it by injection; nothing reads the environment afterwards.
type Config struct {
	Port string
	DSN  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration

	SMTPHost     string
	SMTPPort     int
	MailUsername string
	MailPassword string

	RazorpayKeyID     string
	RazorpayKeySecret string

	ModelPath string
	UploadDir string
}

// Load reads .env (when present) and the environment into a Config.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	return &Config{
		Port:              env("PORT", "8080"),
		DSN:               os.Getenv("DB"),
		RedisAddr:         env("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           envInt("REDIS_DB", 0),
		SessionSecret:     env("SESSION_SECRET", "skinhub123456789"),
		SessionTTL:        envDuration("SESSION_TTL", 24*time.Hour),
		SMTPHost:          env("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          envInt("SMTP_PORT", 587),
		MailUsername:      os.Getenv("Email"),
		MailPassword:      os.Getenv("Password"),
		RazorpayKeyID:     os.Getenv("RazorPay_key_id"),
		RazorpayKeySecret: os.Getenv("RazorPay_key_secret"),
		ModelPath:         env("MODEL_PATH", "skin_model.json"),
		UploadDir:         env("UPLOAD_DIR", "static/uploads"),
	}
}

// ConnectDB opens the postgres connection and migrates the two owned tables.
// TranslateError lets the stores detect uniqueness violations portably.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}); err != nil {
		return nil, err
	}
	return db, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
