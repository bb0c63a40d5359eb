package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Telegram TelegramConfig `yaml:"telegram"`
	Source   SourceConfig   `yaml:"source"`
	Watch    WatchConfig    `yaml:"watch"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"`
	APIBaseURL  string        `yaml:"api_base_url"`
	PollTimeout time.Duration `yaml:"poll_timeout"`
}

type SourceConfig struct {
	BaseURL          string        `yaml:"base_url"`
	Timeout          time.Duration `yaml:"timeout"`
	FingerprintsPath string        `yaml:"fingerprints_path"`
}

type WatchConfig struct {
	Interval    time.Duration `yaml:"interval"`
	Concurrency int           `yaml:"concurrency"`
	TopN        int           `yaml:"top_n"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "post_watcher"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "transitions"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "post_transitions"
	}
	if c.Telegram.APIBaseURL == "" {
		c.Telegram.APIBaseURL = "https://api.telegram.org"
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 30 * time.Second
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://api.x.com"
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 30 * time.Second
	}
	if c.Source.FingerprintsPath == "" {
		c.Source.FingerprintsPath = "fingerprints.yaml"
	}
	if c.Watch.Interval == 0 {
		c.Watch.Interval = time.Minute
	}
	if c.Watch.Concurrency == 0 {
		c.Watch.Concurrency = 10
	}
	if c.Watch.TopN == 0 {
		c.Watch.TopN = 2
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
