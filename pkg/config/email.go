package config

type EmailConfig struct {
	FromAddress  string
	FromName     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// UsesSMTP is false in development setups without a relay; mail goes to the log instead
func (ec EmailConfig) UsesSMTP() bool {
	return ec.SMTPHost != ""
}

func loadEmailConfig() EmailConfig {
	return EmailConfig{
		FromAddress:  getEnv("EMAIL_FROM_ADDRESS", "careers@crewdesk.local"),
		FromName:     getEnv("EMAIL_FROM_NAME", "Crew Careers"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
	}
}
