package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	HTTP        HTTP
	Reports     Reports
	Roster      Roster
}

// TelegramBot is optional; without a token only the HTTP surface runs.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type HTTP struct {
	Addr        string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

type Reports struct {
	Enabled  bool   `envconfig:"REPORTS_ENABLED" default:"true"`
	Timezone string `envconfig:"REPORT_TIMEZONE" default:"America/Chicago"`
}

type Roster struct {
	Seed       bool   `envconfig:"SEED_ROSTER" default:"true"`
	RandomSeed uint64 `envconfig:"RANDOM_SEED" default:"0"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if _, err := c.Reports.Location(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r Reports) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", r.Timezone, err)
	}
	return loc, nil
}
