package config

import "os"

// Development reports whether the process runs in development mode
// (pretty logs, relaxed cookies). Set DEVELOPMENT to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
