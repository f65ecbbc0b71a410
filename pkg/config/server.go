package config

type ServerConfig struct {
	Port          int
	LogLevel      string
	PublicBaseURL string
	CORSOrigins   []string
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:          getEnvInt("SERVER_PORT", 8080),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		CORSOrigins:   getEnvStringSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}
