package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"space-rogue/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации симуляции.
type Config struct {
	// Seed - мастер-зерно сектора. 0 значит "взять от времени".
	Seed  int64 `yaml:"seed"`
	Ticks int   `yaml:"ticks"`

	Log     LogConfig     `yaml:"log"`
	World   WorldConfig   `yaml:"world"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WorldConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Mobs        int    `yaml:"mobs"`
	VisionRange int    `yaml:"vision_range"`
	Ship        string `yaml:"ship"`       // чертеж из worldgen.Blueprints
	MobKind     string `yaml:"mob_kind"`   // шаблон из worldgen.MobTemplates
	TileTable   string `yaml:"tile_table"` // пусто - встроенная таблица
}

type MetricsConfig struct {
	Dump bool `yaml:"dump"`
}

// Default возвращает конфиг по умолчанию. Уровень и формат лога пусты:
// их заполняет Load из окружения.
func Default() *Config {
	return &Config{
		Ticks: 20,
		World: WorldConfig{
			Width:       48,
			Height:      24,
			Mobs:        3,
			VisionRange: domain.DefaultVisionRange,
			Ship:        "scout",
			MobKind:     "drone",
		},
		Metrics: MetricsConfig{Dump: true},
	}
}

// Load читает YAML файл конфигурации поверх Default.
// Если path == "", берется SPACEROGUE_CONFIG; если и его нет - дефолты.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SPACEROGUE_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv: приоритет config -> env -> default.
func (c *Config) applyEnv() {
	if c.Seed == 0 {
		if v := os.Getenv("SPACEROGUE_SEED"); v != "" {
			if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = seed
			}
		}
	}
	// Пустые поля лога заполняются так же, как logger.Init: из LOG_LEVEL/LOG_FORMAT.
	if c.Log.Level == "" {
		c.Log.Level = os.Getenv("LOG_LEVEL")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = os.Getenv("LOG_FORMAT")
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate проверяет значения, с которыми сектор не построить.
func (c *Config) Validate() error {
	if c.Ticks < 0 {
		return fmt.Errorf("ticks must be >= 0, got %d", c.Ticks)
	}
	if c.World.Width < 8 || c.World.Height < 8 {
		return fmt.Errorf("world must be at least 8x8, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.World.Mobs < 0 {
		return fmt.Errorf("mobs must be >= 0, got %d", c.World.Mobs)
	}
	if c.World.VisionRange < 0 {
		return fmt.Errorf("vision_range must be >= 0, got %d", c.World.VisionRange)
	}
	return nil
}

// ResolveSeed возвращает Seed, подставляя время, если он не задан.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}
