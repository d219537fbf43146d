package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type AuthConfig struct {
	Secret   string `yaml:"secret"`
	TTLHours int    `yaml:"ttl_hours"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Auth    AuthConfig `yaml:"auth"`
	Session struct {
		Dir string `yaml:"dir"`
	} `yaml:"session"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Telegram      TelegramConfig `yaml:"telegram"`
	Gemini        GeminiConfig   `yaml:"gemini"`
	Notifications struct {
		TTLMillis int `yaml:"ttl_ms"`
	} `yaml:"notifications"`
	Messaging struct {
		AutoReplyDelayMillis int `yaml:"auto_reply_delay_ms"`
	} `yaml:"messaging"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.TTLHours == 0 {
		cfg.Auth.TTLHours = 24
	}
	if cfg.Session.Dir == "" {
		cfg.Session.Dir = ".session"
	}
	if cfg.Notifications.TTLMillis == 0 {
		cfg.Notifications.TTLMillis = 3000
	}
	if cfg.Messaging.AutoReplyDelayMillis == 0 {
		cfg.Messaging.AutoReplyDelayMillis = 2000
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	return &cfg
}
