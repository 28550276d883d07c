package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	CricketAPI  CricketAPI
	Feed        Feed
	TelegramBot TelegramBot
	Reports     Reports
}

type CricketAPI struct {
	BaseURL   string `envconfig:"API_BASE_URL" required:"true"`
	AuthToken string `envconfig:"API_TOKEN"`
}

type Feed struct {
	URL string `envconfig:"SOCKET_URL" required:"true"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Reports struct {
	DigestSchedule string `envconfig:"DIGEST_SCHEDULE" default:"30 7 * * *"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
