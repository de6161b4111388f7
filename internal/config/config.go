package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full service configuration. Every field has a default, so a
// missing config file is fine; env vars (SERVER_PORT, RULES_EMAIL_SENDER, ...)
// override both defaults and file values.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Sample SampleConfig `mapstructure:"sample"`
	Rules  RulesConfig  `mapstructure:"rules"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type SampleConfig struct {
	Path string `mapstructure:"path"`
	Rows int    `mapstructure:"rows"`
	Seed int64  `mapstructure:"seed"`
}

// RulesConfig carries the tunable pieces of the heuristic engines. The
// defaults reproduce the canonical rule set; overriding them does not change
// the rule structure, only thresholds, signal lists, and the email signature.
type RulesConfig struct {
	HealthyProbability  float64  `mapstructure:"healthy_probability"`
	HealthyMaxDays      int      `mapstructure:"healthy_max_days"`
	VeryLowProbability  float64  `mapstructure:"very_low_probability"`
	LowProbability      float64  `mapstructure:"low_probability"`
	StuckDays           int      `mapstructure:"stuck_days"`
	SlowDays            int      `mapstructure:"slow_days"`
	ColdContactDays     int      `mapstructure:"cold_contact_days"`
	StaleContactDays    int      `mapstructure:"stale_contact_days"`
	ReengageContactDays int      `mapstructure:"reengage_contact_days"`
	NegativeWords       []string `mapstructure:"negative_words"`
	NegativePhrases     []string `mapstructure:"negative_phrases"`
	EmailSender         string   `mapstructure:"email_sender"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() // loads .env when present

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)

	v.SetDefault("sample.path", "data/sample_opportunities.csv")
	v.SetDefault("sample.rows", 200)
	v.SetDefault("sample.seed", 42)

	r := DefaultRules()
	v.SetDefault("rules.healthy_probability", r.HealthyProbability)
	v.SetDefault("rules.healthy_max_days", r.HealthyMaxDays)
	v.SetDefault("rules.very_low_probability", r.VeryLowProbability)
	v.SetDefault("rules.low_probability", r.LowProbability)
	v.SetDefault("rules.stuck_days", r.StuckDays)
	v.SetDefault("rules.slow_days", r.SlowDays)
	v.SetDefault("rules.cold_contact_days", r.ColdContactDays)
	v.SetDefault("rules.stale_contact_days", r.StaleContactDays)
	v.SetDefault("rules.reengage_contact_days", r.ReengageContactDays)
	v.SetDefault("rules.negative_words", r.NegativeWords)
	v.SetDefault("rules.negative_phrases", r.NegativePhrases)
	v.SetDefault("rules.email_sender", r.EmailSender)
}

// DefaultRules is the canonical rule set. Used as the viper defaults and by
// callers that want the engines without any configuration plumbing.
func DefaultRules() RulesConfig {
	return RulesConfig{
		HealthyProbability:  0.60,
		HealthyMaxDays:      7,
		VeryLowProbability:  0.20,
		LowProbability:      0.30,
		StuckDays:           45,
		SlowDays:            30,
		ColdContactDays:     30,
		StaleContactDays:    14,
		ReengageContactDays: 21,
		NegativeWords: []string{
			"delay", "concern", "budget", "expensive", "competitor",
			"risk", "blocked", "pause", "hold",
		},
		NegativePhrases: []string{
			"on hold", "no budget", "went dark", "lost to", "not a priority",
		},
		EmailSender: "Your account team",
	}
}
