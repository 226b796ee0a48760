package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	Database   Database
	Logger     Logger
	Browser    Browser
	Meeting    Meeting
	Recorder   Recorder
	Server     Server
	Migrations Migrations
}

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type Migrations struct {
	Path string
}

type Logger struct {
	Env   string
	Level string
}

type Browser struct {
	Display         string
	Headless        bool
	BrowsersPath    string
	NavigateTimeout time.Duration
}

type Meeting struct {
	URL       string
	BotName   string
	Duration  time.Duration
	OutputDir string
}

type Recorder struct {
	FPS          int
	Width        int
	Height       int
	Codec        string
	Preset       string
	CRF          int
	BitrateKbps  int
	AutopadColor string
	AspectRatio  string
	FollowNewTab bool
}

type Server struct {
	Enabled bool
	Port    string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		Browser: Browser{
			Display:         env("DISPLAY", ":0"),
			Headless:        envBool("PW_HEADLESS"),
			BrowsersPath:    env("PLAYWRIGHT_BROWSERS_PATH", ""),
			NavigateTimeout: envDurationMs("PW_NAVIGATE_TIMEOUT_MS", 60*time.Second),
		},
		Meeting: Meeting{
			URL:       os.Getenv("MEETING_URL"),
			BotName:   env("MEETING_BOT_NAME", "Meeting Bot"),
			Duration:  envDurationMs("RECORDING_DURATION_MS", 30*time.Second),
			OutputDir: env("RECORDING_OUTPUT_DIR", "report/video"),
		},
		Recorder: Recorder{
			FPS:          envInt("RECORDER_FPS", 25),
			Width:        envInt("RECORDER_WIDTH", 1920),
			Height:       envInt("RECORDER_HEIGHT", 1080),
			Codec:        env("RECORDER_CODEC", "libx264"),
			Preset:       env("RECORDER_PRESET", "ultrafast"),
			CRF:          envInt("RECORDER_CRF", 23),
			BitrateKbps:  envInt("RECORDER_BITRATE_KBPS", 1000),
			AutopadColor: env("RECORDER_AUTOPAD_COLOR", "black"),
			AspectRatio:  env("RECORDER_ASPECT_RATIO", "16:9"),
			FollowNewTab: envBool("RECORDER_FOLLOW_NEW_TAB"),
		},
		Server: Server{
			Enabled: envBool("SERVER_ENABLED"),
			Port:    env("SERVER_PORT", "8080"),
		},
		Migrations: Migrations{
			Path: env("MIGRATIONS_PATH", "file://migrations"),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}

// envDurationMs читает длительность в миллисекундах из окружения
func envDurationMs(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return defaultValue
}
