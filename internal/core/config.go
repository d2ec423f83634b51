package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/moodnest/moodnest-api/pkg/sqlstore"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string   `toml:"addr"`
	Log      Log      `toml:"log"`
	Postgres PGConfig `toml:"postgres"`

	Security Security `toml:"security"`
	Export   Export   `toml:"export"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("MOODNEST_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Security.FromENV()
	c.Export.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("MOODNEST_POSTGRESQL_DSN")
}

func (c PGConfig) ConnectConfig() sqlstore.ConnectConfig {
	return sqlstore.ConnectConfig{DSN: c.DSN}
}

type Security struct {
	TokenSecret    string `toml:"token_secret"`
	TokenExpireDay int    `toml:"token_expire_day"`
}

func (s *Security) FromENV() {
	s.TokenSecret = os.Getenv("MOODNEST_TOKEN_SECRET")
}

const DEFAULT_TOKEN_EXPIRE_DAY = 30

func (s Security) ExpireDays() int {
	if s.TokenExpireDay <= 0 {
		return DEFAULT_TOKEN_EXPIRE_DAY
	}
	return s.TokenExpireDay
}

type Export struct {
	Dir string `toml:"dir"`
}

func (e *Export) FromENV() {
	e.Dir = os.Getenv("MOODNEST_EXPORT_DIR")
}

func (e Export) Path() string {
	if e.Dir == "" {
		return os.TempDir()
	}
	return e.Dir
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("MOODNEST_LOG_LEVEL")
	l.Path = os.Getenv("MOODNEST_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
