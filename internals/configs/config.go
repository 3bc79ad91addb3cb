package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	OSSBucket        string
	OSSEndpoint      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("DEPLOY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, falling back to system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	OSSBucket = GetEnv("OSS_BUCKET_NAME")
	OSSEndpoint = GetEnv("OSS_ENDPOINT")

	if JWTSecret == "" {
		log.Println("JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
