package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr    string        `mapstructure:"addr"`
	Webhook WebhookConfig `mapstructure:"webhook"`
}

type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func LoadFromEnv() Config {
	v := viper.New()
	v.SetEnvPrefix("OZONRELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":3000")
	v.SetDefault("webhook.timeout", 10*time.Second)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/ozonrelay/")

	_ = v.ReadInConfig() // ignore if not found

	// Explicit binds for nested keys; AutomaticEnv alone does not map them.
	_ = v.BindEnv("webhook.url", "OZONRELAY_WEBHOOK_URL")
	_ = v.BindEnv("webhook.timeout", "OZONRELAY_WEBHOOK_TIMEOUT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg
	}
	return cfg
}

func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "OZONRELAY_ADDR must not be empty")
	}
	webhookURL := strings.TrimSpace(c.Webhook.URL)
	if webhookURL == "" {
		problems = append(problems, "OZONRELAY_WEBHOOK_URL is required")
	} else {
		u, err := url.Parse(webhookURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			problems = append(problems, "OZONRELAY_WEBHOOK_URL must be an absolute http(s) URL")
		}
	}
	if c.Webhook.Timeout <= 0 {
		problems = append(problems, "OZONRELAY_WEBHOOK_TIMEOUT must be a positive duration")
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

type StartupSummary struct {
	Addr        string
	WebhookHost string
	Timeout     time.Duration
}

// Summary reports startup configuration without the webhook URL itself; the
// URL embeds the downstream channel's credential.
func (c Config) Summary() StartupSummary {
	host := ""
	if u, err := url.Parse(strings.TrimSpace(c.Webhook.URL)); err == nil {
		host = u.Host
	}
	return StartupSummary{
		Addr:        c.Addr,
		WebhookHost: host,
		Timeout:     c.Webhook.Timeout,
	}
}
