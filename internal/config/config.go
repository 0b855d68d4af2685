package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/ballmer/internal/bac"
	"github.com/KirkDiggler/ballmer/internal/services/messaging"
)

// EnvPrefix is the prefix for environment overrides, e.g. BALLMER_MODEL_CLAMP_NEGATIVE
const EnvPrefix = "BALLMER"

// Config holds the complete application configuration
type Config struct {
	Model     ModelConfig     `mapstructure:"model"`
	Live      LiveConfig      `mapstructure:"live"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Messaging MessagingConfig `mapstructure:"messaging"`
}

// ModelConfig holds the BAC model constants
type ModelConfig struct {
	BoozeConst        float64 `mapstructure:"booze_const"`
	TimeConst         float64 `mapstructure:"time_const"`
	BallmerPeakBAC    float64 `mapstructure:"ballmer_peak_bac"`
	MinuteGranularity int     `mapstructure:"minute_granularity"`
	MaleConstant      float64 `mapstructure:"male_constant"`
	FemaleConstant    float64 `mapstructure:"female_constant"`
	ClampNegative     bool    `mapstructure:"clamp_negative"`
}

// LiveConfig controls the live clock
type LiveConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	MaxTicks int           `mapstructure:"max_ticks"` // 0 runs until cancelled
}

// LoggingConfig defines logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
	File   string `mapstructure:"file"`   // optional, stderr when empty
}

// MessagingConfig defines how messages are picked
type MessagingConfig struct {
	Tone string `mapstructure:"tone"`
	Seed int64  `mapstructure:"seed"` // 0 seeds from the clock
}

// Load loads configuration from an optional .env, an optional config file and
// BALLMER_ environment variables, in increasing order of precedence
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("model.booze_const", bac.DefaultBoozeConst)
	v.SetDefault("model.time_const", bac.DefaultTimeConst)
	v.SetDefault("model.ballmer_peak_bac", bac.DefaultBallmerPeakBAC)
	v.SetDefault("model.minute_granularity", bac.DefaultMinuteGranularity)
	v.SetDefault("model.male_constant", bac.DefaultMaleConstant)
	v.SetDefault("model.female_constant", bac.DefaultFemaleConstant)
	v.SetDefault("model.clamp_negative", true)

	v.SetDefault("live.interval", "1s")
	v.SetDefault("live.max_ticks", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")

	v.SetDefault("messaging.tone", string(messaging.ToneFunny))
	v.SetDefault("messaging.seed", 0)
}

// validate validates the configuration
func validate(cfg *Config) error {
	m := cfg.Model
	if m.BoozeConst <= 0 {
		return fmt.Errorf("invalid booze constant: %v", m.BoozeConst)
	}
	if m.TimeConst < 0 {
		return fmt.Errorf("invalid time constant: %v", m.TimeConst)
	}
	if m.BallmerPeakBAC <= 0 {
		return fmt.Errorf("invalid ballmer peak BAC: %v", m.BallmerPeakBAC)
	}
	if m.MinuteGranularity <= 0 {
		return fmt.Errorf("invalid minute granularity: %d", m.MinuteGranularity)
	}
	if m.MaleConstant <= 0 || m.FemaleConstant <= 0 {
		return fmt.Errorf("distribution constants must be positive")
	}

	if cfg.Live.Interval <= 0 {
		return fmt.Errorf("invalid live interval: %s", cfg.Live.Interval)
	}
	if cfg.Live.MaxTicks < 0 {
		return fmt.Errorf("invalid max ticks: %d", cfg.Live.MaxTicks)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %q", cfg.Logging.Format)
	}

	if !messaging.MessageTone(cfg.Messaging.Tone).IsValid() {
		return fmt.Errorf("invalid message tone: %q", cfg.Messaging.Tone)
	}

	return nil
}

// ModelConfig converts the model section into a bac.Config
func (c *Config) ModelConfig() *bac.Config {
	return &bac.Config{
		BoozeConst:        c.Model.BoozeConst,
		TimeConst:         c.Model.TimeConst,
		BallmerPeakBAC:    c.Model.BallmerPeakBAC,
		MinuteGranularity: c.Model.MinuteGranularity,
		MaleConstant:      c.Model.MaleConstant,
		FemaleConstant:    c.Model.FemaleConstant,
		ClampNegative:     c.Model.ClampNegative,
	}
}
