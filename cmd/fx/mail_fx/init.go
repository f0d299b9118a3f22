package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"tobugo/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.MailServiceInterface {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "TobuGo",
		AppName:    "TobuGo",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	return services.NewSMTPMailService(cfg)
}
