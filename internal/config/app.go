package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Addr returns the HTTP listen address, ":8080" unless APP_PORT
// overrides it.
func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}
