package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Config controls runtime behavior for a game session.
type Config struct {
	QuizPath    string `env:"JEOPARDY_QUIZ" envDefault:"quizzes/sample.yaml"`
	Frontend    string `env:"JEOPARDY_FRONTEND" envDefault:"terminal"`
	LogPath     string `env:"JEOPARDY_LOG"`
	DataDir     string `env:"JEOPARDY_DATA_DIR"`
	Journal     bool   `env:"JEOPARDY_JOURNAL" envDefault:"true"`
	Debug       bool   `env:"JEOPARDY_DEBUG"`
	WindowWidth int    `env:"JEOPARDY_WINDOW_WIDTH" envDefault:"1800"`
	Board       BoardConfig
	UI          UIConfig
}

type BoardConfig struct {
	Overlay      string `env:"JEOPARDY_OVERLAY" envDefault:"cell"`
	HideAnswered bool   `env:"JEOPARDY_HIDE_ANSWERED"`
}

type UIConfig struct {
	StyleVariant string `env:"JEOPARDY_STYLE" envDefault:"classic"`
}

func DefaultConfig() Config {
	return Config{
		QuizPath:    "quizzes/sample.yaml",
		Frontend:    FrontendTerminal,
		Journal:     true,
		WindowWidth: 1800,
		Board: BoardConfig{
			Overlay: "cell",
		},
		UI: UIConfig{
			StyleVariant: "classic",
		},
	}
}

// LoadConfig reads JEOPARDY_* variables on top of the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	switch c.Frontend {
	case "":
		c.Frontend = FrontendTerminal
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("invalid frontend %q", c.Frontend)
	}

	c.Board.Overlay = strings.ToLower(strings.TrimSpace(c.Board.Overlay))
	switch c.Board.Overlay {
	case "":
		c.Board.Overlay = "cell"
	case "cell", "center":
	default:
		return fmt.Errorf("invalid overlay placement %q", c.Board.Overlay)
	}

	c.UI.StyleVariant = strings.ToLower(strings.TrimSpace(c.UI.StyleVariant))
	switch c.UI.StyleVariant {
	case "", "classic", "night", "mono":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "classic"
	}

	if c.WindowWidth <= 0 {
		c.WindowWidth = 1800
	}
	if strings.TrimSpace(c.QuizPath) == "" {
		return errors.New("quiz path is required")
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "jeopardy")
	}

	return nil
}

// JournalPath is the sqlite file holding session history.
func (c Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal.db")
}
