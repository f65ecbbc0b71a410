package config

import "time"

type AuthConfig struct {
	JWT      JWTConfig
	Session  SessionConfig
	Password PasswordConfig
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

type SessionConfig struct {
	TTL time.Duration
}

type PasswordConfig struct {
	BcryptCost int
}

// BootstrapConfig seeds the first super admin on an empty install
type BootstrapConfig struct {
	Username string
	Password string
}

func (b BootstrapConfig) Enabled() bool {
	return b.Username != "" && b.Password != ""
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET_KEY", ""),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 24*time.Hour),
			Issuer:         getEnv("JWT_ISSUER", "crewdesk"),
		},
		Session: SessionConfig{
			TTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Password: PasswordConfig{
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},
	}
}

func loadBootstrapConfig() BootstrapConfig {
	return BootstrapConfig{
		Username: getEnv("BOOTSTRAP_ADMIN_USERNAME", ""),
		Password: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
	}
}
