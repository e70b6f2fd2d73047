package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT           string
	DB_URL         string
	SESSION_SECRET string
	ADMIN_API_KEY  string
	CORS_ORIGIN    string

	PUBLIC_BASE_URL string

	STORAGE_BACKEND string
	FILES_DIR       string

	S3_BUCKET     string
	S3_REGION     string
	S3_ACCESS_KEY string
	S3_SECRET_KEY string
	S3_ENDPOINT   string
	S3_PREFIX     string
	S3_PATH_STYLE bool
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	SESSION_SECRET = mustEnv("SESSION_SECRET")
	ADMIN_API_KEY = mustEnv("ADMIN_API_KEY")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	PUBLIC_BASE_URL = getEnv("PUBLIC_BASE_URL", "")

	STORAGE_BACKEND = getEnv("STORAGE_BACKEND", "local")
	FILES_DIR = getEnv("FILES_DIR", "./data/files")

	if STORAGE_BACKEND == "s3" {
		S3_BUCKET = mustEnv("S3_BUCKET")
		S3_REGION = mustEnv("S3_REGION")
		S3_ACCESS_KEY = mustEnv("S3_ACCESS_KEY")
		S3_SECRET_KEY = mustEnv("S3_SECRET_KEY")
		S3_ENDPOINT = getEnv("S3_ENDPOINT", "")
		S3_PREFIX = getEnv("S3_PREFIX", "files")
		S3_PATH_STYLE = getEnv("S3_PATH_STYLE", "") == "true"
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
