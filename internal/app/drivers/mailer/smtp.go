package mailer

import (
	"net/smtp"

	"clinicbook-service/internal/app/config"
)

type SMTPClient struct {
	Host        string
	Port        int
	EmailSender string
	Auth        smtp.Auth
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	auth := smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	return &SMTPClient{
		Host:        driverConfig.SMTP.Host,
		Port:        driverConfig.SMTP.Port,
		EmailSender: driverConfig.SMTP.EmailSender,
		Auth:        auth,
	}
}
