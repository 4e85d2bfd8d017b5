package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings — параметры запуска, которые можно менять без пересборки.
type Settings struct {
	Seed        int64
	SavePath    string
	ListenAddr  string
	LogLevel    slog.Level
	EnemyDefs   string // путь к JSON с переопределением архетипов врагов
	WavesToWin  int
	StartInMenu bool
	Mute        bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		SavePath:    "arena-save.json",
		ListenAddr:  "localhost:8080",
		LogLevel:    slog.LevelInfo,
		WavesToWin:  DefaultWavesToWin,
		StartInMenu: true,
	}
}

// LoadSettings reads an optional .env file and then the process environment.
// Отсутствие .env не считается ошибкой.
func LoadSettings(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return SettingsFromEnv(os.Getenv)
}

// SettingsFromEnv builds Settings from a lookup function.
func SettingsFromEnv(getenv func(string) string) (Settings, error) {
	s := DefaultSettings()

	if v := getenv("ARENA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid ARENA_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	if v := getenv("ARENA_SAVE_PATH"); v != "" {
		s.SavePath = v
	}
	if v := getenv("ARENA_LISTEN_ADDR"); v != "" {
		s.ListenAddr = v
	}
	if v := getenv("ARENA_LOG_LEVEL"); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return Settings{}, fmt.Errorf("invalid ARENA_LOG_LEVEL %q: %w", v, err)
		}
	}
	s.EnemyDefs = getenv("ARENA_ENEMY_DEFS")
	if v := getenv("ARENA_WAVES_TO_WIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Settings{}, fmt.Errorf("invalid ARENA_WAVES_TO_WIN %q", v)
		}
		s.WavesToWin = n
	}
	if v := getenv("ARENA_START_IN_MENU"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid ARENA_START_IN_MENU %q: %w", v, err)
		}
		s.StartInMenu = b
	}
	if v := getenv("ARENA_MUTE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid ARENA_MUTE %q: %w", v, err)
		}
		s.Mute = b
	}
	return s, nil
}

// NewLogger installs a text slog handler on stderr at the configured level.
func (s Settings) NewLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.LogLevel})
	return slog.New(h)
}
