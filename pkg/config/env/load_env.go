package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	DataDirVar = "SCHEDPLOT_DATA_DIR"
	OutDirVar  = "SCHEDPLOT_OUT_DIR"
)

// LoadDotEnv loads environment variables from a .env file.
// The ENV_PATH environment variable overrides the default path.
// A missing file is not an error: the binaries run fine on flags alone.
func LoadDotEnv(defaultPath string) {
	envPath := defaultPath
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPath = p
	}

	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file loaded", "path", envPath)
	}
}

// DataDir returns the SCHEDPLOT_DATA_DIR override, or fallback when unset.
func DataDir(fallback string) string {
	if d := os.Getenv(DataDirVar); d != "" {
		return d
	}
	return fallback
}

// OutDir returns the SCHEDPLOT_OUT_DIR override, or fallback when unset.
func OutDir(fallback string) string {
	if d := os.Getenv(OutDirVar); d != "" {
		return d
	}
	return fallback
}
