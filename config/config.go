package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	History struct {
		Backend     string // memory | redis
		TTLSeconds  int
		RecentLimit int
	}
	Game struct {
		HumanSeat   int   // 0 = all AI
		Seed        int64 // 0 = time based
		DelayMillis int
	}
	Log struct {
		Level string
	}
}

var C Config

const DefaultPath = "config/config.yaml"

// ErrNoFile is returned by Load when path does not exist; C then holds defaults.
var ErrNoFile = errors.New("config file not found")

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.port", ":8080")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("history.backend", "memory")
	v.SetDefault("history.ttlSeconds", 86400)
	v.SetDefault("history.recentLimit", 20)
	v.SetDefault("game.humanSeat", 1)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.delayMillis", 600)
	v.SetDefault("log.level", "info")

	// WEST_HISTORY_BACKEND=redis
	v.SetEnvPrefix("WEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into C. Env overrides and defaults always apply.
func Load(path string) error {
	v := newViper()
	v.SetConfigFile(path)

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		// SetConfigFile 时 viper 直接返回底层的 fs 错误
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		readErr = fmt.Errorf("%w: %s", ErrNoFile, path)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return err
	}
	C = c
	return readErr
}

func (c *Config) validate() error {
	switch c.History.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("history.backend must be memory or redis, got %q", c.History.Backend)
	}
	if c.Game.HumanSeat < 0 || c.Game.HumanSeat > 4 {
		return fmt.Errorf("game.humanSeat must be 0..4, got %d", c.Game.HumanSeat)
	}
	return nil
}
