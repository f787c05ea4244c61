package config

import (
	"fmt"
	"os"
	"strings"
)

const DEFAULT_STATIC_DIR string = "./public"
const DEFAULT_DB_NAME string = "ticketing-service"

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func GetEnv(key string, fallback string) string {
	if val, exist := os.LookupEnv(key); exist && val != "" {
		return val
	}
	return fallback
}

// AllowedOrigins returns the comma-separated client URLs permitted by CORS.
func AllowedOrigins() string {
	return GetEnv("CLIENT_URLS", "http://localhost:3000")
}

// VerifyBaseURL is the public base used when building ticket verification
// links embedded in QR codes.
func VerifyBaseURL() string {
	base := GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")
	return strings.TrimRight(base, "/")
}
