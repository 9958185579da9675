package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("LEARNIFY_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("LEARNIFY_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("LEARNIFY_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/learnify"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("LEARNIFY_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("LEARNIFY_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("LEARNIFY_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

func GetWebDomain() string {
	return os.Getenv("LEARNIFY_WEB_DOMAIN")
}

func GetCertFile() string {
	return os.Getenv("LEARNIFY_CERT_FILE")
}

func GetKeyFile() string {
	return os.Getenv("LEARNIFY_KEY_FILE")
}

// GetTokenTTL returns the bearer token lifetime. Expiry is the only
// termination mechanism for issued tokens, so this also bounds how long a
// role or premium change can stay invisible to an already issued token.
func GetTokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("LEARNIFY_TOKEN_TTL_HOURS"))
	if err != nil || hours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}
