package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName       = "Build Your Own Assistant"
	AppID         = "com.byoa.assistant"
	EnvFileEnvVar = "BYOA_ENV"
	DevServerURL  = "http://localhost:3000"
)

type LoadOptions struct {
	// DebugOverride forces debug mode on when set (e.g. from a -debug flag).
	DebugOverride bool
	EnvPath       string
}

type Config struct {
	Debug             bool
	EnableFileLogging bool
	LogPath           string
	TrayIconPath      string
	FetchTimeout      time.Duration
	FetchWorkers      int
	CopyDelay         time.Duration
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) explicit path from options
	// 2) .env in the application (executable) directory
	// 3) BYOA_ENV env var as a path to a config file
	envPath := opts.EnvPath
	if envPath == "" {
		envPath = resolveEnvPath()
	}
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Debug:             opts.DebugOverride || parseBool(os.Getenv("BYOA_DEBUG")),
		EnableFileLogging: parseBool(getEnvWithDefault("ENABLE_FILE_LOGGING", "true")),
		LogPath:           os.Getenv("LOG_FILE"),
		TrayIconPath:      strings.TrimSpace(os.Getenv("TRAY_ICON")),
		FetchTimeout:      time.Duration(getEnvInt("FETCH_TIMEOUT_SEC", 30)) * time.Second,
		FetchWorkers:      getEnvInt("FETCH_WORKERS", runtime.NumCPU()),
		CopyDelay:         time.Duration(getEnvInt("COPY_DELAY_MS", 150)) * time.Millisecond,
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvFileEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns a positive integer from the environment or def.
func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
