package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the service, read from the
// environment with an optional .env file.
type Config struct {
	Addr string
	// DBPath is the Badger data directory.
	DBPath string
	// CommentNeedApproval gates new comments behind moderation.
	CommentNeedApproval bool
	DefaultPageSize     int
}

// Load reads the configuration. A missing .env file is not an error; the
// process environment always wins.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:                getString("INKWELL_ADDR", ":8080"),
		DBPath:              getString("INKWELL_DB_PATH", "data/badger"),
		CommentNeedApproval: getBool("INKWELL_COMMENT_NEED_APPROVAL", true),
		DefaultPageSize:     getInt("INKWELL_PAGE_SIZE", 10),
	}
}

func getString(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	asInt, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return asInt
}

func getBool(key string, defaultValue bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	asBool, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return asBool
}
