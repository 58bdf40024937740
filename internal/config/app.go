package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/campusbot/pkg/log"
)

const (
	envDebug       = "CAMPUS_DEBUG"
	envRuntimePath = "CAMPUS_RUNTIME_PATH"

	defaultRuntimeDir = ".campusbot"
)

type AppConfig struct {
	RuntimePath   string `env:"CAMPUS_RUNTIME_PATH" envDefault:".campusbot"`
	KnowledgePath string `env:"CAMPUS_KNOWLEDGE_PATH" envDefault:"data/knowledge_base.json"`

	// Matching
	MatchThreshold int    `env:"CAMPUS_MATCH_THRESHOLD" envDefault:"70"`
	MatchProfile   string `env:"CAMPUS_MATCH_PROFILE"` // replaces MatchThreshold when set
	UnionID        string `env:"CAMPUS_UNION_ID" envDefault:"rpi_union"`

	// Disambiguation fallback
	DisambiguationCacheSize int `env:"CAMPUS_DISAMBIGUATION_CACHE" envDefault:"128"`
}

func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 100 {
		return nil, fmt.Errorf("match threshold must be within 0..100, got %d", c.MatchThreshold)
	}
	c.RuntimePath = underHome(c.RuntimePath)
	return c, nil
}

// IsDebug reports whether CAMPUS_DEBUG holds a true value ("1", "true", ...).
// It is read before any .env file is loaded.
func IsDebug() bool {
	v, err := strconv.ParseBool(os.Getenv(envDebug))
	return err == nil && v
}

// GetRuntimePath resolves the runtime directory straight from the
// environment, before AppConfig can be parsed.
func GetRuntimePath() string {
	path := os.Getenv(envRuntimePath)
	if path == "" {
		path = defaultRuntimeDir
	}
	return underHome(path)
}

// underHome anchors a relative path at the user's home directory.
func underHome(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := LoadAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetKnowledgePath() string {
	return c.KnowledgePath
}
