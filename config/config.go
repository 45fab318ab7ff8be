package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cubescan/internal/domain/entity"
)

type Config struct {
	Verbose bool
	Palette entity.Palette
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Palette: entity.DefaultPalette(),
	}

	if v := os.Getenv("CUBESCAN_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CUBESCAN_VERBOSE: %w", err)
		}
		cfg.Verbose = verbose
	}

	if v := os.Getenv("CUBESCAN_PALETTE"); v != "" {
		overrides, err := entity.ParsePaletteOverrides(v)
		if err != nil {
			return nil, fmt.Errorf("CUBESCAN_PALETTE: %w", err)
		}
		palette, err := cfg.Palette.WithOverrides(overrides)
		if err != nil {
			return nil, fmt.Errorf("CUBESCAN_PALETTE: %w", err)
		}
		cfg.Palette = palette
	}

	return cfg, nil
}
