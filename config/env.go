package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	MongoURI       string
	MongoDB        string
	PinTTL         time.Duration
	PinInResponse  bool
	WhatsAppNumber string
	UploadDir      string
	MaxUploadSize  int64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	pinTTL, err := time.ParseDuration(getEnv("PIN_TTL", "5m"))
	if err != nil || pinTTL <= 0 {
		pinTTL = 5 * time.Minute
	}

	pinInResponse, err := strconv.ParseBool(getEnv("PIN_IN_RESPONSE", "true"))
	if err != nil {
		pinInResponse = true
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "5000")),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGODB_NAME", "kbs"),
		PinTTL:         pinTTL,
		PinInResponse:  pinInResponse,
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "919123536601"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:  maxUploadSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
