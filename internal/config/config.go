// internal/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// URL pública de exportação CSV da planilha de produtividade. Publicar a aba
// como CSV dispensa chaves de API do Google.
const defaultSheetCSVURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vR9zW7vYbeCkhZ1AjDL8vNyM6Usfr-OpHak6EbODijojb_S7JxJTHMYT7DaSJiXRcQ-AsCff48QEVX-/pub?output=csv"

const defaultPort = "8084"

// Config holds the environment-provided settings of the dashboard service.
type Config struct {
	SheetCSVURL string
	Port        string
}

// Load reads configuration from the environment, picking up a local .env
// file when present. Missing variables fall back to the published defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		SheetCSVURL: envOrDefault("SHEET_CSV_URL", defaultSheetCSVURL),
		Port:        envOrDefault("PORT", defaultPort),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
