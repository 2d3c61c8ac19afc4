package mailing

import (
	"Cocktail-Catalog/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// SendWelcomeMail greets a freshly signed-up user and points them at the
// catalog so they can start adding drinks.
func SendWelcomeMail(name string, toEmail string) error {
	config := LoadMailConfig()
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to the cocktail catalog. Your account is ready."+
			" Head over to <a href=\"%s\">%s</a> and add your first drink.</p>",
		name, config.AppURL, config.AppURL,
	)
	return sendMail(config, toEmail, "Welcome to the cocktail catalog", body)
}

func sendMail(config MailConfig, toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", config.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", config.SMTPPort, err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, port, config.SMTPEmail, config.SMTPPassword)
	return dialer.DialAndSend(mailer)
}
