package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/palemoky/sequence/internal/bot"
	"github.com/palemoky/sequence/internal/game"
	"github.com/palemoky/sequence/internal/logger"
)

// RelPath is the config file location relative to the XDG config directories.
const RelPath = "sequence/config.yaml"

// Config 模拟器配置
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Log        LogConfig        `yaml:"log"`
	Debug      DebugConfig      `yaml:"debug"`
	Redis      RedisConfig      `yaml:"redis"`
}

// SimulationConfig describes the games to play.
type SimulationConfig struct {
	Games             int      `yaml:"games"`
	Seed              uint64   `yaml:"seed"` // 0 = time-based
	Teams             int      `yaml:"teams"`
	Players           []string `yaml:"players"`
	TwoEyedJackCutoff int      `yaml:"two_eyed_jack_cutoff"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DebugConfig 调试配置
type DebugConfig struct {
	CheckInvariants bool `yaml:"check_invariants"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Games:             100,
			Teams:             2,
			Players:           []string{string(bot.KindDeterministic), string(bot.KindDeterministic)},
			TwoEyedJackCutoff: bot.DefaultTwoEyedJackCutoff,
		},
		Log: LogConfig{
			Level: logger.LevelResults.String(),
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  24 * time.Hour,
		},
	}
}

// fillDefaults restores defaults for keys explicitly set to their zero value.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Simulation.Games == 0 {
		c.Simulation.Games = def.Simulation.Games
	}
	if c.Simulation.Teams == 0 {
		c.Simulation.Teams = def.Simulation.Teams
	}
	if len(c.Simulation.Players) == 0 {
		c.Simulation.Players = def.Simulation.Players
	}
	if c.Simulation.TwoEyedJackCutoff == 0 {
		c.Simulation.TwoEyedJackCutoff = def.Simulation.TwoEyedJackCutoff
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = def.Redis.Addr
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = def.Redis.TTL
	}
}

// Validate checks the configuration against the engine's supported setups.
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.Games < 1 {
		errs = append(errs, fmt.Errorf("simulation.games must be positive, got %d", c.Simulation.Games))
	}
	if err := game.ValidateSetup(len(c.Simulation.Players), c.Simulation.Teams); err != nil {
		errs = append(errs, err)
	}
	for _, p := range c.Simulation.Players {
		if _, err := bot.ParseKind(p); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Simulation.TwoEyedJackCutoff < 0 {
		errs = append(errs, fmt.Errorf("simulation.two_eyed_jack_cutoff must not be negative, got %d", c.Simulation.TwoEyedJackCutoff))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	return errors.Join(errs...)
}

// Search returns the first config file found in the XDG config directories.
func Search() (string, error) {
	return xdg.SearchConfigFile(RelPath)
}

// LoadDefault loads the XDG config file if one exists and falls back to Default.
func LoadDefault() (*Config, error) {
	path, err := Search()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// ApplyEnv overrides settings from SEQUENCE_* environment variables, loading
// envFiles (or ./.env when none are given) first if they exist.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	if v := os.Getenv("SEQUENCE_GAMES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SEQUENCE_GAMES: %w", err)
		}
		c.Simulation.Games = n
	}
	if v := os.Getenv("SEQUENCE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SEQUENCE_SEED: %w", err)
		}
		c.Simulation.Seed = n
	}
	if v := os.Getenv("SEQUENCE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SEQUENCE_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	return nil
}
